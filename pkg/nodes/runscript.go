package nodes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/systemstart/powermake/pkg/api"
)

// killWaitDelay bounds how long Wait may block on inherited pipes after
// the script's process group has been signalled.
const killWaitDelay = 5 * time.Second

type runScriptNode struct {
	cfg api.NodeConfig
}

func (n *runScriptNode) ID() string   { return n.cfg.ID }
func (n *runScriptNode) Type() string { return api.NodeTypeRunScript }

func (n *runScriptNode) Execute(ctx context.Context, ec *ExecContext) (string, error) {
	command, err := api.Expand(n.cfg.Path, ec.Artifacts)
	if err != nil {
		return "", err
	}

	if ec.ScriptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ec.ScriptTimeout)
		defer cancel()
	}

	slog.Debug("running script", "node", n.cfg.ID, "command", command)

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = ec.Env

	// The shell gets its own process group and cancellation signals the
	// whole group: killing only the direct child would leave grandchildren
	// (pipelines, backgrounded commands) holding the stdout/stderr pipes,
	// and Wait would block until they finish on their own. WaitDelay
	// unblocks Wait even if a detached process keeps a pipe open.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = killWaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Stdout is captured either way but persisted only on success.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ScriptError{
				Command:  command,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
				Err:      ctx.Err(),
			}
		}
		return "", &ScriptError{Command: command, ExitCode: -1, Err: err}
	}

	dest := ec.Store.Allocate(n.cfg.ID)
	if err := os.WriteFile(dest, stdout.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("writing script output %s: %w", dest, err)
	}

	return dest, nil
}

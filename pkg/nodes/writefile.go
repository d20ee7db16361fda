package nodes

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/systemstart/powermake/pkg/api"
)

type writeFileNode struct {
	cfg api.NodeConfig
}

func (n *writeFileNode) ID() string   { return n.cfg.ID }
func (n *writeFileNode) Type() string { return api.NodeTypeWriteFile }

// Execute copies the input node's artifact to the declared output path.
// This is the pipeline's sink: the only node type that writes outside the
// temp directory.
func (n *writeFileNode) Execute(_ context.Context, ec *ExecContext) (string, error) {
	src, ok := ec.Artifacts[n.cfg.Input]
	if !ok {
		return "", fmt.Errorf("%w: input %q has no artifact", api.ErrUnboundVariable, n.cfg.Input)
	}

	dest, err := filepath.Abs(n.cfg.Output)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return "", fmt.Errorf("creating parent directories: %w", err)
	}

	if err := copyFile(src, dest); err != nil {
		return "", err
	}

	slog.Debug("writefile wrote output", "node", n.cfg.ID, "input", n.cfg.Input, "output", dest)
	return dest, nil
}

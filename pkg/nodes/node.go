package nodes

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// ExecContext carries the per-run state shared by all executors. One
// instance exists per run, owned by the orchestrator; nothing here is
// process-global, so concurrent runs in one process stay isolated.
type ExecContext struct {
	// Artifacts maps a completed node's id to the absolute path of its
	// produced file. Grows monotonically as nodes succeed.
	Artifacts map[string]string

	// Store allocates the run's working files.
	Store *TempStore

	// Env is the environment passed to runscript subprocesses.
	Env []string

	// HTTP is the client used by httpgetfile nodes.
	HTTP *resty.Client

	// ScriptTimeout bounds each runscript subprocess.
	ScriptTimeout time.Duration
}

// Executor is the interface all node types implement. Execute runs the
// node and returns the absolute path of its artifact; recording that path
// under the node's id is the caller's job.
type Executor interface {
	ID() string
	Type() string
	Execute(ctx context.Context, ec *ExecContext) (string, error)
}

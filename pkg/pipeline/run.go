package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/systemstart/powermake/pkg/api"
	"github.com/systemstart/powermake/pkg/nodes"
)

const (
	// DefaultTmpDirName is created beside the pipeline document unless the
	// caller overrides the temp directory.
	DefaultTmpDirName = ".tmp"

	defaultHTTPTimeout   = 30 * time.Second
	defaultScriptTimeout = 10 * time.Minute
)

// Status is the lifecycle state of one node within a run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Options configures one run. The zero value is usable: temp directory
// defaults to .tmp/ beside the document, environment to the process
// environment, and both timeouts to engine defaults.
type Options struct {
	TmpDir        string
	Verbose       bool
	HTTPTimeout   time.Duration
	ScriptTimeout time.Duration
	Env           []string
}

// NodeResult records one node's outcome within a run. Artifact is the
// absolute path of the produced file, empty unless the node succeeded.
type NodeResult struct {
	ID       string
	Type     string
	Status   Status
	Artifact string
	Duration time.Duration
}

// Result is the outcome of one run. On failure it still carries every
// node's status, so callers can see which nodes never ran.
type Result struct {
	RunID    string
	Nodes    []NodeResult
	Duration time.Duration
}

// Run executes a validated pipeline strictly in declaration order. The
// first node failure halts the run; nodes after it stay pending and are
// never invoked. Cancelling ctx tears down any in-flight subprocess or
// request, leaving already-written temp files in place.
func Run(ctx context.Context, p *api.Pipeline, opts Options) (*Result, error) {
	start := time.Now()

	result := &Result{
		RunID: uuid.NewString(),
		Nodes: make([]NodeResult, len(p.Nodes)),
	}
	for i, cfg := range p.Nodes {
		result.Nodes[i] = NodeResult{ID: cfg.ID, Type: cfg.Node, Status: StatusPending}
	}

	ec, err := newExecContext(p, opts)
	if err != nil {
		result.Duration = time.Since(start)
		return result, err
	}

	slog.Info("starting pipeline",
		"run", result.RunID,
		"pipeline", p.FilePath,
		"nodes", len(p.Nodes),
		"tmpDir", ec.Store.Dir())

	if opts.Verbose {
		logSummary(p)
	}

	for i, cfg := range p.Nodes {
		executor, err := nodes.New(cfg)
		if err != nil {
			result.Nodes[i].Status = StatusFailed
			result.Duration = time.Since(start)
			return result, wrapNodeFailure(i, len(p.Nodes), cfg, err)
		}

		slog.Info("running node",
			"run", result.RunID,
			"step", fmt.Sprintf("%d/%d", i+1, len(p.Nodes)),
			"node", cfg.ID,
			"type", cfg.Node,
			"elapsed", time.Since(start).Round(time.Millisecond))

		result.Nodes[i].Status = StatusRunning
		nodeStart := time.Now()

		artifact, err := executor.Execute(ctx, ec)
		result.Nodes[i].Duration = time.Since(nodeStart)

		if err != nil {
			result.Nodes[i].Status = StatusFailed
			result.Duration = time.Since(start)
			slog.Error("node failed",
				"run", result.RunID,
				"node", cfg.ID,
				"type", cfg.Node,
				"error", err)
			return result, wrapNodeFailure(i, len(p.Nodes), cfg, err)
		}

		ec.Artifacts[cfg.ID] = artifact
		result.Nodes[i].Status = StatusSucceeded
		result.Nodes[i].Artifact = artifact

		if opts.Verbose {
			slog.Debug("node succeeded",
				"run", result.RunID,
				"node", cfg.ID,
				"artifact", artifact,
				"duration", result.Nodes[i].Duration.Round(time.Millisecond))
		}
	}

	result.Duration = time.Since(start)
	slog.Info("pipeline completed",
		"run", result.RunID,
		"nodes", len(p.Nodes),
		"duration", result.Duration.Round(time.Millisecond))

	if opts.Verbose {
		for _, cfg := range p.Nodes {
			slog.Debug("final artifact", "node", cfg.ID, "path", ec.Artifacts[cfg.ID])
		}
	}

	return result, nil
}

func newExecContext(p *api.Pipeline, opts Options) (*nodes.ExecContext, error) {
	tmpDir := opts.TmpDir
	if tmpDir == "" {
		tmpDir = filepath.Join(p.Dir, DefaultTmpDirName)
	}

	store, err := nodes.NewTempStore(tmpDir)
	if err != nil {
		return nil, err
	}

	httpTimeout := opts.HTTPTimeout
	if httpTimeout <= 0 {
		httpTimeout = defaultHTTPTimeout
	}
	scriptTimeout := opts.ScriptTimeout
	if scriptTimeout <= 0 {
		scriptTimeout = defaultScriptTimeout
	}
	env := opts.Env
	if env == nil {
		env = os.Environ()
	}

	return &nodes.ExecContext{
		Artifacts:     make(map[string]string),
		Store:         store,
		Env:           env,
		HTTP:          resty.New().SetTimeout(httpTimeout).SetDoNotParseResponse(true),
		ScriptTimeout: scriptTimeout,
	}, nil
}

func logSummary(p *api.Pipeline) {
	for i, cfg := range p.Nodes {
		var detail string
		switch cfg.Node {
		case api.NodeTypeReadFile:
			detail = "read " + cfg.Path
		case api.NodeTypeRunScript:
			detail = "run " + cfg.Path
		case api.NodeTypeWriteFile:
			detail = fmt.Sprintf("write ${%s} to %s", cfg.Input, cfg.Output)
		case api.NodeTypeHTTPGetFile:
			detail = "download " + cfg.URL
		}
		slog.Debug("pipeline node",
			"step", fmt.Sprintf("%d/%d", i+1, len(p.Nodes)),
			"node", cfg.ID,
			"type", cfg.Node,
			"detail", detail)
	}
}

func wrapNodeFailure(index, total int, cfg api.NodeConfig, err error) error {
	return fmt.Errorf("node %d/%d (%s, %s): %w", index+1, total, cfg.ID, cfg.Node, err)
}

package nodes

import (
	"fmt"

	"github.com/systemstart/powermake/pkg/api"
)

// New creates the Executor implementation for a node declaration.
func New(cfg api.NodeConfig) (Executor, error) {
	switch cfg.Node {
	case api.NodeTypeReadFile:
		return &readFileNode{cfg: cfg}, nil
	case api.NodeTypeRunScript:
		return &runScriptNode{cfg: cfg}, nil
	case api.NodeTypeWriteFile:
		return &writeFileNode{cfg: cfg}, nil
	case api.NodeTypeHTTPGetFile:
		return &httpGetFileNode{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %q", api.ErrUnknownNodeType, cfg.Node)
	}
}

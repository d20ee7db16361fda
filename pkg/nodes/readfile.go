package nodes

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/systemstart/powermake/pkg/api"
)

type readFileNode struct {
	cfg api.NodeConfig
}

func (n *readFileNode) ID() string   { return n.cfg.ID }
func (n *readFileNode) Type() string { return api.NodeTypeReadFile }

func (n *readFileNode) Execute(_ context.Context, ec *ExecContext) (string, error) {
	dest := ec.Store.Allocate(n.cfg.ID)

	if err := copyFile(n.cfg.Path, dest); err != nil {
		return "", err
	}

	slog.Debug("readfile copied source", "node", n.cfg.ID, "source", n.cfg.Path, "artifact", dest)
	return dest, nil
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

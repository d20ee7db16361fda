package nodes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/systemstart/powermake/pkg/api"
)

type httpGetFileNode struct {
	cfg api.NodeConfig
}

func (n *httpGetFileNode) ID() string   { return n.cfg.ID }
func (n *httpGetFileNode) Type() string { return api.NodeTypeHTTPGetFile }

func (n *httpGetFileNode) Execute(ctx context.Context, ec *ExecContext) (string, error) {
	slog.Debug("downloading", "node", n.cfg.ID, "url", n.cfg.URL)

	// The body is an opaque artifact; the client is configured to leave it
	// unparsed so it can be streamed straight to disk.
	resp, err := ec.HTTP.R().
		SetContext(ctx).
		Get(n.cfg.URL)
	if err != nil {
		return "", &HTTPError{URL: n.cfg.URL, Err: err}
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return "", &HTTPError{URL: n.cfg.URL, StatusCode: resp.StatusCode()}
	}

	dest := ec.Store.Allocate(n.cfg.ID)
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dest, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", &HTTPError{URL: n.cfg.URL, Err: err}
	}

	return dest, nil
}

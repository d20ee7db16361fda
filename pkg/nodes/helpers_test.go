package nodes

import (
	"os"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

// newTestContext builds an ExecContext over a fresh temp store.
func newTestContext(t *testing.T) *ExecContext {
	t.Helper()
	store, err := NewTempStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewTempStore() error: %v", err)
	}
	return &ExecContext{
		Artifacts:     make(map[string]string),
		Store:         store,
		Env:           os.Environ(),
		HTTP:          resty.New().SetTimeout(5 * time.Second).SetDoNotParseResponse(true),
		ScriptTimeout: 30 * time.Second,
	}
}

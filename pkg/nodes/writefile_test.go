package nodes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/systemstart/powermake/pkg/api"
)

func TestWriteFile_CopiesArtifact(t *testing.T) {
	content := []byte("artifact bytes")
	source := filepath.Join(t.TempDir(), "count.out")
	if err := os.WriteFile(source, content, 0o600); err != nil {
		t.Fatal(err)
	}

	ec := newTestContext(t)
	ec.Artifacts["count"] = source

	dest := filepath.Join(t.TempDir(), "result.txt")
	executor, err := New(api.NodeConfig{
		Node:   api.NodeTypeWriteFile,
		ID:     "out",
		Input:  "count",
		Output: dest,
	})
	if err != nil {
		t.Fatal(err)
	}

	artifact, err := executor.Execute(context.Background(), ec)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if artifact != dest {
		t.Errorf("artifact = %q, want output path %q", artifact, dest)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("destination content = %q, want %q", got, content)
	}
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	source := filepath.Join(t.TempDir(), "src.out")
	if err := os.WriteFile(source, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	ec := newTestContext(t)
	ec.Artifacts["src"] = source

	dest := filepath.Join(t.TempDir(), "deeply", "nested", "dir", "result.txt")
	executor, err := New(api.NodeConfig{
		Node:   api.NodeTypeWriteFile,
		ID:     "out",
		Input:  "src",
		Output: dest,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := executor.Execute(context.Background(), ec); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("destination was not written: %v", err)
	}
}

func TestWriteFile_MissingInputArtifact(t *testing.T) {
	ec := newTestContext(t)
	executor, err := New(api.NodeConfig{
		Node:   api.NodeTypeWriteFile,
		ID:     "out",
		Input:  "ghost",
		Output: filepath.Join(t.TempDir(), "result.txt"),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = executor.Execute(context.Background(), ec)
	if !errors.Is(err, api.ErrUnboundVariable) {
		t.Fatalf("expected ErrUnboundVariable, got: %v", err)
	}
}

package api

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParsePipeline_ValidDocument(t *testing.T) {
	doc := `
- node: readfile
  id: src
  path: input.txt
- node: runscript
  id: count
  path: wc -l ${src}
- node: httpgetfile
  id: remote
  url: https://example.com/data.csv
- node: writefile
  id: out
  input: count
  output: result.txt
`
	p, err := ParsePipeline([]byte(doc))
	if err != nil {
		t.Fatalf("expected valid document, got error: %v", err)
	}

	if len(p.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(p.Nodes))
	}

	want := []struct {
		nodeType string
		id       string
	}{
		{NodeTypeReadFile, "src"},
		{NodeTypeRunScript, "count"},
		{NodeTypeHTTPGetFile, "remote"},
		{NodeTypeWriteFile, "out"},
	}
	for i, w := range want {
		n := p.Nodes[i]
		if n.Node != w.nodeType || n.ID != w.id {
			t.Errorf("node %d = (%q, %q), want (%q, %q)", i, n.Node, n.ID, w.nodeType, w.id)
		}
		if n.Index != i {
			t.Errorf("node %d Index = %d", i, n.Index)
		}
		if n.Line == 0 {
			t.Errorf("node %d has no line information", i)
		}
	}

	if p.Nodes[1].Path != "wc -l ${src}" {
		t.Errorf("runscript path = %q", p.Nodes[1].Path)
	}
	if p.Nodes[3].Input != "count" || p.Nodes[3].Output != "result.txt" {
		t.Errorf("writefile fields = (%q, %q)", p.Nodes[3].Input, p.Nodes[3].Output)
	}
}

func TestParsePipeline_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{"not a list", "node: readfile\nid: src\n", "must be a list"},
		{"scalar document", `"just a string"`, "must be a list"},
		{"element not a mapping", "- readfile\n", "must be a mapping"},
		{"malformed yaml", "- node: [unclosed\n", ""},
		{"empty document", "", "empty"},
		{"empty list", "[]", "no nodes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePipeline([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrSpecSyntax) {
				t.Fatalf("expected ErrSpecSyntax, got: %v", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParsePipeline_SyntaxErrorPosition(t *testing.T) {
	doc := "- node: readfile\n  id: src\n  path: a.txt\n- just-a-scalar\n"
	_, err := ParsePipeline([]byte(doc))

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *SyntaxError, got: %v", err)
	}
	if syntaxErr.Index != 1 {
		t.Errorf("Index = %d, want 1", syntaxErr.Index)
	}
	if syntaxErr.Line != 4 {
		t.Errorf("Line = %d, want 4", syntaxErr.Line)
	}
}

func TestLoadPipeline(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(source, []byte("hello\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	doc := "- node: readfile\n  id: src\n  path: " + source + "\n"
	file := filepath.Join(dir, "pipeline.yaml")
	if err := os.WriteFile(file, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPipeline(file)
	if err != nil {
		t.Fatalf("LoadPipeline() error: %v", err)
	}
	if p.Dir != dir {
		t.Errorf("Dir = %q, want %q", p.Dir, dir)
	}
	if !filepath.IsAbs(p.FilePath) {
		t.Errorf("FilePath %q is not absolute", p.FilePath)
	}
}

func TestLoadPipeline_MissingFile(t *testing.T) {
	_, err := LoadPipeline(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadPipeline_InvalidPipeline(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pipeline.yaml")
	doc := "- node: teleport\n  id: x\n"
	if err := os.WriteFile(file, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadPipeline(file)
	if !errors.Is(err, ErrUnknownNodeType) {
		t.Fatalf("expected ErrUnknownNodeType, got: %v", err)
	}
}

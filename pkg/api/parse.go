package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPipeline reads a pipeline document, sets Dir/FilePath, and validates it.
func LoadPipeline(filename string) (*Pipeline, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline file: %w", err)
	}

	p, err := ParsePipeline(data)
	if err != nil {
		return nil, fmt.Errorf("parsing pipeline file %s: %w", filename, err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	p.FilePath = absPath
	p.Dir = filepath.Dir(absPath)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validating pipeline %s: %w", filename, err)
	}

	return p, nil
}

// ParsePipeline decodes the document structure without interpreting node
// semantics. The document must be a YAML sequence of mappings; anything
// else is a SyntaxError carrying the element's position where known.
func ParsePipeline(data []byte) (*Pipeline, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SyntaxError{Index: -1, Msg: err.Error(), Err: err}
	}

	if len(doc.Content) == 0 {
		return nil, &SyntaxError{Index: -1, Msg: "pipeline document is empty"}
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, &SyntaxError{
			Index:  -1,
			Line:   root.Line,
			Column: root.Column,
			Msg:    "pipeline document must be a list of nodes",
		}
	}
	if len(root.Content) == 0 {
		return nil, &SyntaxError{Index: -1, Msg: "pipeline has no nodes"}
	}

	p := &Pipeline{Nodes: make([]NodeConfig, 0, len(root.Content))}
	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, &SyntaxError{
				Index:  i,
				Line:   item.Line,
				Column: item.Column,
				Msg:    "node must be a mapping",
			}
		}

		var cfg NodeConfig
		if err := item.Decode(&cfg); err != nil {
			return nil, &SyntaxError{
				Index:  i,
				Line:   item.Line,
				Column: item.Column,
				Msg:    err.Error(),
				Err:    err,
			}
		}
		cfg.Index = i
		cfg.Line = item.Line
		cfg.Column = item.Column
		p.Nodes = append(p.Nodes, cfg)
	}

	return p, nil
}

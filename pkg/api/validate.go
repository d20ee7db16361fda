package api

import (
	"errors"
	"fmt"
	"os"
)

var validNodeTypes = map[string]bool{
	NodeTypeReadFile:    true,
	NodeTypeRunScript:   true,
	NodeTypeWriteFile:   true,
	NodeTypeHTTPGetFile: true,
}

// Validate checks every node of the pipeline and reports all failing nodes
// at once. Checks on a single node stop at its first failure, but
// validation continues across the remaining nodes; the combined error joins
// one entry per failing node.
func (p *Pipeline) Validate() error {
	var errs []error

	// Ids declared so far, for the strictly-earlier reference rule.
	declared := make(map[string]bool)

	for i, node := range p.Nodes {
		err := validateNode(node, declared)
		if err != nil {
			errs = append(errs, wrapNodeError(i, node.ID, err))
		}

		// Register the id even when a later check on this node failed, so
		// one bad field does not cascade into unresolved-reference noise.
		if node.ID != "" && !declared[node.ID] {
			declared[node.ID] = true
		}
	}

	return errors.Join(errs...)
}

func validateNode(node NodeConfig, declared map[string]bool) error {
	if node.Node == "" {
		return fmt.Errorf("%w: node", ErrMissingField)
	}
	if !validNodeTypes[node.Node] {
		return fmt.Errorf("%w: %q", ErrUnknownNodeType, node.Node)
	}

	if node.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingField)
	}
	if declared[node.ID] {
		return fmt.Errorf("%w: %q", ErrDuplicateID, node.ID)
	}

	switch node.Node {
	case NodeTypeReadFile:
		return validateReadFile(node)
	case NodeTypeRunScript:
		return validateRunScript(node, declared)
	case NodeTypeWriteFile:
		return validateWriteFile(node, declared)
	case NodeTypeHTTPGetFile:
		return validateHTTPGetFile(node)
	}
	return nil
}

func validateReadFile(node NodeConfig) error {
	if node.Path == "" {
		return fmt.Errorf("%w: path", ErrMissingField)
	}

	info, err := os.Stat(node.Path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrPathNotFound, node.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %q is a directory, not a file", ErrPathNotFound, node.Path)
	}

	// Readable, not merely present.
	f, err := os.Open(node.Path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrPathNotFound, node.Path, err)
	}
	f.Close()
	return nil
}

func validateRunScript(node NodeConfig, declared map[string]bool) error {
	if node.Path == "" {
		return fmt.Errorf("%w: path", ErrMissingField)
	}
	for _, ref := range Placeholders(node.Path) {
		if !declared[ref] {
			return fmt.Errorf("%w: ${%s} does not name an earlier node", ErrUnresolvedReference, ref)
		}
	}
	return nil
}

func validateWriteFile(node NodeConfig, declared map[string]bool) error {
	if node.Input == "" {
		return fmt.Errorf("%w: input", ErrMissingField)
	}
	if node.Output == "" {
		return fmt.Errorf("%w: output", ErrMissingField)
	}
	if !declared[node.Input] {
		return fmt.Errorf("%w: input %q does not name an earlier node", ErrUnresolvedReference, node.Input)
	}
	// Output is a destination: existence and writability surface at
	// execution time, not here.
	return nil
}

func validateHTTPGetFile(node NodeConfig) error {
	if node.URL == "" {
		return fmt.Errorf("%w: url", ErrMissingField)
	}
	return nil
}

func wrapNodeError(index int, id string, err error) error {
	if id != "" {
		return fmt.Errorf("node %d (%s): %w", index+1, id, err)
	}
	return fmt.Errorf("node %d: %w", index+1, err)
}

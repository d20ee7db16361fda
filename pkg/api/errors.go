package api

import "fmt"

// Load- and validation-time error kinds. Validation wraps these with the
// failing node's index and id, so callers can match kinds with errors.Is
// while users get a message that pinpoints the node.
var (
	ErrSpecSyntax          = fmt.Errorf("pipeline document syntax error")
	ErrUnknownNodeType     = fmt.Errorf("unknown node type")
	ErrMissingField        = fmt.Errorf("missing required field")
	ErrDuplicateID         = fmt.Errorf("duplicate node id")
	ErrUnresolvedReference = fmt.Errorf("unresolved node reference")
	ErrPathNotFound        = fmt.Errorf("path not found")

	// ErrUnboundVariable is defensive: validation rejects forward and
	// unknown references, so expansion should never hit it.
	ErrUnboundVariable = fmt.Errorf("unbound variable")
)

// SyntaxError reports a structural problem in the pipeline document. Index
// is the offending list element (-1 when the document as a whole is bad);
// Line and Column are 1-based YAML positions, 0 when unknown.
type SyntaxError struct {
	Index  int
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Index >= 0 && e.Line > 0:
		return fmt.Sprintf("node %d (line %d, column %d): %s", e.Index+1, e.Line, e.Column, e.Msg)
	case e.Index >= 0:
		return fmt.Sprintf("node %d: %s", e.Index+1, e.Msg)
	default:
		return e.Msg
	}
}

func (e *SyntaxError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrSpecSyntax
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSpecSyntax
}

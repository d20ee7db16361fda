package nodes

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempStore owns one run's working directory and hands out a stable file
// slot per node id. Allocated files are never cleaned up at end of run;
// artifacts stay behind for inspection.
type TempStore struct {
	dir   string
	paths map[string]string
}

// NewTempStore creates dir if absent and confirms it is writable.
func NewTempStore(dir string) (*TempStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTempDirUnwritable, dir, err)
	}

	probe, err := os.CreateTemp(dir, ".writecheck-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTempDirUnwritable, dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving temp directory: %w", err)
	}

	return &TempStore{
		dir:   absDir,
		paths: make(map[string]string),
	}, nil
}

// Dir returns the absolute working directory.
func (s *TempStore) Dir() string {
	return s.dir
}

// Allocate returns the file slot for id. The path is deterministic within
// one run: repeated calls for the same id return the identical path.
func (s *TempStore) Allocate(id string) string {
	if p, ok := s.paths[id]; ok {
		return p
	}
	p := filepath.Join(s.dir, id+".out")
	s.paths[id] = p
	return p
}

package dataset

import (
	"context"
	"fmt"
	"os"
)

var _ Loader = (*FileLoader)(nil)

// FileLoader reads the dataset from a JSON file on disk.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the given file path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and parses the dataset file.
func (l *FileLoader) Load(_ context.Context) (*Dataset, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file %s: %w", l.path, err)
	}
	return Parse(raw)
}

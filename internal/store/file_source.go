package store

import (
	"io"
	"os"

	"roomkey/internal/domain"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// FileSource reads the input blob from a path, or from Stdin when the path
// is empty or "-".
type FileSource struct {
	path  string
	Stdin io.Reader
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, Stdin: os.Stdin}
}

// Path returns the configured path, "-" for standard input.
func (s *FileSource) Path() string {
	if s.path == "" {
		return StdinPath
	}
	return s.path
}

// ReadInput returns the whole input blob.
func (s *FileSource) ReadInput() ([]byte, error) {
	if s.Path() == StdinPath {
		return readAll(s.Stdin)
	}
	return readFile(s.path)
}

// BytesSource serves a fixed in-memory blob.
type BytesSource []byte

// ReadInput returns the blob itself.
func (b BytesSource) ReadInput() ([]byte, error) { return b, nil }

// Compile-time assertions that the sources implement domain.InputSource.
var (
	_ domain.InputSource = (*FileSource)(nil)
	_ domain.InputSource = BytesSource(nil)
)

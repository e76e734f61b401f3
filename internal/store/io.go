package store

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoInput is returned when the input path does not exist.
var ErrNoInput = errors.New("input not found")

// readFile reads the file at path; a missing file maps to ErrNoInput.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, path)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// readAll drains r, used for standard input.
func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return b, nil
}

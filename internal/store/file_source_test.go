package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomkey/internal/domain"
	"roomkey/internal/store"
)

func TestFileSource_ReadsFile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "input.txt")
	blob := []byte("not-a-real-room-404[oarel]\n")
	require.NoError(t, os.WriteFile(path, blob, 0o600))

	var src domain.InputSource = store.NewFileSource(path)
	got, err := src.ReadInput()
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestFileSource_MissingFile(t *testing.T) {
	src := store.NewFileSource(filepath.Join(t.TempDir(), "nope.txt"))
	_, err := src.ReadInput()
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNoInput))
}

func TestFileSource_Stdin(t *testing.T) {
	for _, path := range []string{"", store.StdinPath} {
		src := store.NewFileSource(path)
		src.Stdin = strings.NewReader("a-b-c-d-e-f-g-h-987[abcde]")
		got, err := src.ReadInput()
		require.NoError(t, err)
		assert.Equal(t, "a-b-c-d-e-f-g-h-987[abcde]", string(got))
		assert.Equal(t, store.StdinPath, src.Path())
	}
}

func TestBytesSource(t *testing.T) {
	got, err := store.BytesSource("x-1[abcde]").ReadInput()
	require.NoError(t, err)
	assert.Equal(t, "x-1[abcde]", string(got))
}

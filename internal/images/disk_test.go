package images

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	ctx := context.Background()

	data := []byte{0xff, 0xd8, 0xff, 0xe0, 'j', 'p', 'g'}
	require.NoError(t, s.Save(ctx, FileName("abc"), bytes.NewReader(data), int64(len(data))))

	r, err := s.Open(ctx, "abc.jpeg")
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, data, got)

	// overwriting keeps a single file
	require.NoError(t, s.Save(ctx, "abc.jpeg", bytes.NewReader([]byte("v2")), 2))
	entries, err := os.ReadDir(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, s.Delete(ctx, "abc.jpeg"))
	_, err = s.Open(ctx, "abc.jpeg")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Delete(ctx, "abc.jpeg"), "deleting a missing image is not an error")
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"../secret.jpeg", "a/b.jpeg", "", ".hidden"} {
		assert.Error(t, s.Save(ctx, name, bytes.NewReader(nil), 0), "Save(%q)", name)
		_, err := s.Open(ctx, name)
		assert.ErrorIs(t, err, ErrNotFound, "Open(%q)", name)
	}
}

package images

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks
var (
	_ Store = (*MinIOStore)(nil)
	_ Store = (*DiskStore)(nil)
)

// testMinIOStore connects to MINIO_TEST_ENDPOINT and skips when it is unset
// or unreachable
func testMinIOStore(t *testing.T) *MinIOStore {
	t.Helper()

	endpoint := os.Getenv("MINIO_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_TEST_ENDPOINT not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := NewMinIOStore(ctx, MinIOConfig{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("MINIO_TEST_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_TEST_SECRET_KEY"),
		Bucket:    "cookmaster-test",
	})
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}
	return s
}

func TestNewMinIOStoreRequiresSettings(t *testing.T) {
	_, err := NewMinIOStore(context.Background(), MinIOConfig{})
	assert.ErrorContains(t, err, "endpoint")

	_, err = NewMinIOStore(context.Background(), MinIOConfig{Endpoint: "localhost:9000"})
	assert.ErrorContains(t, err, "access_key")
}

func TestMinIOStoreRoundTrip(t *testing.T) {
	s := testMinIOStore(t)
	ctx := context.Background()
	name := FileName("minio-round-trip")

	data := []byte{0xff, 0xd8, 0xff, 0xe0, 'j', 'p', 'g'}
	require.NoError(t, s.Save(ctx, name, bytes.NewReader(data), int64(len(data))))
	t.Cleanup(func() { s.Delete(context.Background(), name) })

	r, err := s.Open(ctx, name)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, data, got)

	require.NoError(t, s.Delete(ctx, name))
	_, err = s.Open(ctx, name)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileNameAndCleanName(t *testing.T) {
	assert.Equal(t, "abc.jpeg", FileName("abc"))

	for _, bad := range []string{"", ".", "..", "../x.jpeg", "a/b.jpeg", ".hidden"} {
		_, err := cleanName(bad)
		assert.Error(t, err, bad)
	}
	name, err := cleanName("abc.jpeg")
	require.NoError(t, err)
	assert.Equal(t, "abc.jpeg", name)
}

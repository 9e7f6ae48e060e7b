// Package images stores uploaded recipe images. Files are addressed by
// name, which callers derive from the recipe id.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ContentType is the only accepted image encoding
const ContentType = "image/jpeg"

// ErrNotFound is returned when no image is stored under a name
var ErrNotFound = errors.New("image not found")

// Store is an id addressed sink for image files
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	// Open returns ErrNotFound when nothing is stored under name.
	// The caller closes the returned reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

// FileName returns the stored name of a recipe's image
func FileName(recipeID string) string {
	return recipeID + ".jpeg"
}

// cleanName rejects names that would escape the store
func cleanName(name string) (string, error) {
	base := filepath.Base(name)
	if name == "" || base != name || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid image name %q", name)
	}
	return base, nil
}

package repositories

import (
	"context"
	"errors"
	"io"
)

var ErrImageNotFound = errors.New("image not found")

// StoredImage tells the HTTP layer where an uploaded image lives. Exactly one
// field is set.
type StoredImage struct {
	// Path is a file on local disk.
	Path string
	// URL is a short-lived link into a remote bucket.
	URL string
}

// ImageStorage keeps the files behind /uploads/posts/<name>.
type ImageStorage interface {
	Save(ctx context.Context, name, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, name string) error
	Resolve(ctx context.Context, name string) (StoredImage, error)
}

package interfaces

import (
	"context"
	"io"
)

// IFileStorage abstracts S3-compatible object storage for blueprint and
// photo uploads. Upload returns the public URL of the stored object.
type IFileStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

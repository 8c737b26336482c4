package platform

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded media and serves it back over public URLs
type ObjectStorage interface {
	// Upload writes the object and returns its public URL
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

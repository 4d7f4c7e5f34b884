package service

import (
	"context"
	"io"
)

// AssetStorage stores course assets (thumbnails) in a blob bucket and
// returns the public URL clients should use.
type AssetStorage interface {
	// StoreThumbnail writes the image under a course-scoped key and returns
	// its public URL.
	StoreThumbnail(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

package service

import (
	"context"
	"io"
)

// MediaStorage abstracts the object storage bucket holding storefront images.
type MediaStorage interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

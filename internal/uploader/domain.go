package uploader

import (
	"context"
	"errors"
)

var ErrContentTypeNotAllowed = errors.New("content type not allowed")

// ObjectStore writes raw bytes to external blob storage under a caller-chosen
// unique key and returns the public URL of the stored object. A single
// attempt; implementations do not retry.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

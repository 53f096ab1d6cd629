package uploader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service uploads user attachments to blob storage. Object keys are scoped
// under the owning user so uploads never collide across users, with a random
// identifier making them unique per upload.
type Service struct {
	store ObjectStore
}

func New(store ObjectStore) *Service {
	return &Service{store: store}
}

// GenerateKey builds a unique storage key of the form
// <userID>/<uuid><ext>. The extension comes from the content-type allowlist.
func GenerateKey(userID int64, contentType string) (string, error) {
	ext, ok := Ext(contentType)
	if !ok {
		return "", ErrContentTypeNotAllowed
	}

	u, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d/%s%s", userID, u.String(), ext), nil
}

// Upload stores data under a freshly generated key owned by userID and
// returns the public URL. A single attempt: any storage or transport failure
// comes back as an error with no URL, and the caller decides what to tell
// the user.
func (s *Service) Upload(ctx context.Context, userID int64, data []byte, contentType string) (string, error) {
	const op = "uploader.Upload"

	key, err := GenerateKey(userID, contentType)
	if err != nil {
		return "", fmt.Errorf("%s: generate key: %w", op, err)
	}

	url, err := s.store.Put(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("%s: put object: %w", op, err)
	}

	return url, nil
}

// Package s3 is the attachment object store for S3-compatible endpoints
// (Supabase storage's S3 protocol, MinIO, R2). Objects are served from a
// configured public base URL rather than presigned links, since attachment
// URLs end up embedded in message-log rows.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Storage struct {
	bucket        string
	publicBaseURL string
	client        *s3.Client
}

func New(bucket, publicBaseURL string, client *s3.Client) *Storage {
	return &Storage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		client:        client,
	}
}

func (s *Storage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	const op = "storage.s3.Put"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%s: put object: %w", op, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Package blob uploads generated QR images to an S3-compatible object store.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/alpha-code/activity-service/internal/config"
)

// Store wraps a MinIO client for a single bucket.
type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	log           *slog.Logger
}

// NewStore creates a Store from BlobConfig.
func NewStore(cfg config.BlobConfig, logger *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("blob: create client: %w", err)
	}

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		log:           logger.With("adapter", "blob"),
	}, nil
}

// Upload stores data under key and returns the public URL of the object.
func (s *Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("blob: put %s: %w", key, err)
	}

	s.log.DebugContext(ctx, "object uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + s.bucket + "/" + key, nil
}

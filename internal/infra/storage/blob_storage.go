// Package storage implements media object storage on top of gocloud.dev blob.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers. fileblob serves local development, s3blob production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/lifecycle"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage opens the configured bucket and registers its shutdown.
func NewBlobStorage(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.MediaStorage, error) {
	if cfg.Media == nil || cfg.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Media.BucketURL)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Media.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload writes the object under key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Closing after a failed copy aborts the write.
		_ = writer.Close()

		return "", errors.Wrapf(err, "write object %s", key)
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "close writer for %s", key)
	}

	s.logger.Info("media object stored", slog.String("key", key), slog.String("contentType", contentType))

	return s.publicBaseURL + "/" + key, nil
}

// Package storage provides image blob storage over portable bucket URLs.
package storage

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the storage.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for ImageStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and returns an ImageStorage.
func NewImageStorage(params StorageParams) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image storage bucket")

			return bucket.Close()
		},
	})

	params.Logger.Info("Image storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Store writes an image blob under a folder hint and returns its public URL
// and deletion key.
func (s *blobStorage) Store(ctx context.Context, data []byte, folder, name string) (*service.Upload, error) {
	key := buildObjectKey(folder, name)

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: detectContentType(name),
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to write blob %s", key)
	}

	s.logger.Info("Image stored",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return &service.Upload{
		URL: s.publicBaseURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes a previously stored image by its key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// buildObjectKey derives a collision-free object key from the folder hint
// and the original file name.
func buildObjectKey(folder, name string) string {
	ext := strings.ToLower(path.Ext(name))
	stamp := time.Now().UTC().Format("20060102")

	return path.Join(folder, stamp, uuid.NewString()+ext)
}

// detectContentType maps the file extension to a MIME type. The upload
// handler already rejected non-image payloads.
func detectContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStorage),
)

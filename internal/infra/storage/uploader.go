package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"gallery-app/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader writes artwork images to the object-storage bucket and returns
// a public URL for the stored object.
type Uploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewUploader() (*Uploader, error) {
	if config.MINIO_ENDPOINT == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT not configured")
	}

	client, err := minio.New(config.MINIO_ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MINIO_ACCESS_KEY, config.MINIO_SECRET_KEY, ""),
		Secure: config.MINIO_USE_SSL == "true",
	})
	if err != nil {
		return nil, err
	}

	publicURL := config.MINIO_PUBLIC_URL
	if publicURL == "" {
		scheme := "http"
		if config.MINIO_USE_SSL == "true" {
			scheme = "https"
		}
		publicURL = scheme + "://" + config.MINIO_ENDPOINT
	}

	return &Uploader{
		client:    client,
		bucket:    config.MINIO_BUCKET,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (u *Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{})
}

// Upload stores the object under a random key that keeps the original
// extension, and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := u.client.PutObject(ctx, u.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, key), nil
}

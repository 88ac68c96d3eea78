package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore holds product photos in object storage. Objects are keyed
// under the owning restaurant so deletion of a tenant is a prefix removal.
type ImageStore interface {
	Upload(ctx context.Context, restaurantID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error)
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, objectName string) error
}

type minioImageStore struct {
	client *minio.Client
	bucket string
}

// NewMinioImageStore creates an image store backed by a MinIO bucket,
// creating the bucket when missing.
func NewMinioImageStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	store := &minioImageStore{client: client, bucket: bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	found, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !found {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}
	return store, nil
}

func (s *minioImageStore) Upload(ctx context.Context, restaurantID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error) {
	objectName := fmt.Sprintf("%s/%s%s", restaurantID.String(), uuid.New().String(), path.Ext(filename))
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *minioImageStore) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (s *minioImageStore) Delete(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}

package services

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"cityfix-be/utils"
)

// MinioStorage stores issue and solution photos in an S3-compatible
// bucket and hands back publicly reachable URLs.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioStorage(client *minio.Client, bucket, publicURL string) *MinioStorage {
	return &MinioStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload writes the photo under a random key and returns its public URL.
func (s *MinioStorage) Upload(ctx context.Context, data []byte, contentType, originalName string) (string, error) {
	key := "issues/" + uuid.NewString() + strings.ToLower(path.Ext(originalName))

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", utils.StorageError(err)
	}

	return s.publicURL + "/" + s.bucket + "/" + key, nil
}

// Remove deletes a previously uploaded photo by its public URL. Used to
// take back an upload whose enclosing operation did not commit.
func (s *MinioStorage) Remove(ctx context.Context, locator string) error {
	key := strings.TrimPrefix(locator, s.publicURL+"/"+s.bucket+"/")

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return utils.StorageError(err)
	}
	return nil
}

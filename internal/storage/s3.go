package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AssetStore uploads studio assets to the S3-compatible bucket the asset
// base URL serves from. Keys are dataset-scoped and content-addressed by
// uuid, so objects are immutable once written.
type AssetStore struct {
	client  *s3.Client
	bucket  string
	dataset string
}

type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Dataset   string
}

func NewAssetStore(opts Options) *AssetStore {
	s3opts := s3.Options{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		),
	}

	// Custom endpoints (minio and friends) need path-style addressing.
	if opts.Endpoint != "" {
		s3opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3opts.UsePathStyle = true
	}

	return &AssetStore{
		client:  s3.New(s3opts),
		bucket:  opts.Bucket,
		dataset: opts.Dataset,
	}
}

// NewObjectKey mints a fresh dataset-scoped key for an asset with the
// given extension (".webp").
func (s *AssetStore) NewObjectKey(ext string) string {
	return fmt.Sprintf("%s/images/%s%s", s.dataset, uuid.NewString(), ext)
}

func (s *AssetStore) Upload(
	ctx context.Context,
	key string,
	body io.Reader,
	contentType string,
) error {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload asset %s: %w", key, err)
	}

	return nil
}

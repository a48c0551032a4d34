package blob

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"gallery-backend/internal/config"
)

var extension = regexp.MustCompile(`\.[A-Za-z0-9]+$`)

// S3Store keeps blobs in an S3 bucket. Object keys are random so uploads
// never collide regardless of the original filename.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
	base   string
}

var _ Store = (*S3Store)(nil)

// NewS3Store builds an S3-backed blob store from configuration. A custom
// endpoint supports S3-compatible providers.
func NewS3Store(ctx context.Context, cfg config.AWSConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	base := cfg.Endpoint
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	} else {
		base = fmt.Sprintf("%s/%s", base, cfg.Bucket)
	}

	return &S3Store{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		base:   base,
	}, nil
}

// Save uploads the content under a fresh random key, keeping the original
// file extension.
func (s *S3Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	ext := extension.FindString(filepath.Base(originalName))
	key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return key, nil
}

// Remove deletes a stored blob.
func (s *S3Store) Remove(ctx context.Context, filename string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// URL returns the public object URL for a stored blob.
func (s *S3Store) URL(filename string) string {
	return fmt.Sprintf("%s/%s", s.base, filename)
}

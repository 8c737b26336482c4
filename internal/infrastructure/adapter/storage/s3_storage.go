package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
)

// Options configures the media bucket client
type Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string

	// PublicBaseURL is the prefix public object URLs are built from. When
	// empty, path-style endpoint URLs are used instead.
	PublicBaseURL string
}

// S3Storage implements platform.ObjectStorage against an S3-compatible
// bucket holding prompt preview media
type S3Storage struct {
	client *s3.Client
	opts   Options
	logger coreport.Logger
}

// NewS3Storage creates the bucket client
func NewS3Storage(ctx context.Context, opts Options, logger coreport.Logger) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading storage credentials: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Storage{
		client: client,
		opts:   opts,
		logger: logger,
	}, nil
}

// Upload writes the object and returns its public URL
func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.opts.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("Object upload failed", map[string]any{
			"bucket": s.opts.Bucket,
			"key":    key,
			"error":  err.Error(),
		})
		return "", fmt.Errorf("uploading object %q: %w", key, err)
	}

	s.logger.Info("Object uploaded", map[string]any{
		"bucket": s.opts.Bucket,
		"key":    key,
	})
	return s.publicURL(key), nil
}

func (s *S3Storage) publicURL(key string) string {
	if s.opts.PublicBaseURL != "" {
		return strings.TrimRight(s.opts.PublicBaseURL, "/") + "/" + key
	}
	return strings.TrimRight(s.opts.Endpoint, "/") + "/" + s.opts.Bucket + "/" + key
}

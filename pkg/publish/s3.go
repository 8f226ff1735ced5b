package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bloxi-go/bloxi/internal/config"
)

// CacheControl is set on every S3 object. Keys are content-hashed, so an
// object under a given key never changes.
const CacheControl = "public, max-age=31536000, immutable"

// S3API is the part of *s3.Client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store publishes objects to an S3 bucket.
//
// Example usage:
//
//	store := publish.NewS3Store(s3.NewFromConfig(awsCfg), "my-bucket")
//	res, err := publish.Stylesheet(ctx, store, sheet, "assets/")
type S3Store struct {
	client S3API
	bucket string
}

// NewS3Store creates a store writing to bucket through client.
func NewS3Store(client S3API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// Bucket returns the target bucket.
func (s *S3Store) Bucket() string { return s.bucket }

// Put uploads data as one PutObject call and returns its s3:// URL.
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(CacheControl),
		Metadata: map[string]string{
			"generator": "bloxi",
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// NewS3Client builds an S3 client for the publish config. Credentials come
// from the standard AWS_* environment variables. A custom endpoint switches
// to path-style addressing, which MinIO and most S3 clones expect.
func NewS3Client(cfg config.PublishConfig) *s3.Client {
	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}

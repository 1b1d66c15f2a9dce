package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/pager/internal/config"
	"github.com/vango-dev/pager/internal/errors"
)

// DefaultRegion is used when neither the config nor AWS_REGION set one.
const DefaultRegion = "us-east-1"

// PutObjectAPI is the part of *s3.Client used by S3Store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store stores fragments in an S3 bucket.
//
// Example usage:
//
//	client, _ := store.NewS3Client(cfg.Export)
//	st := store.NewS3Store(client, "my-bucket", "fragments/")
type S3Store struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Store creates a new S3 fragment store. prefix is prepended to every key.
func NewS3Store(client PutObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Put uploads body to s3://bucket/prefix+key.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	objectKey := s.prefix + key
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"rendered-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E120").WithField(objectKey).Wrap(err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, objectKey), nil
}

// NewS3Client builds an S3 client from cfg, taking credentials from the
// standard AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN
// variables. Endpoint and PathStyle support S3-compatible services.
func NewS3Client(cfg config.ExportConfig) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E100").WithField("export.bucket").
			WithDetail("The s3 backend needs a bucket")
	}
	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = DefaultRegion
	}

	opts := s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts), nil
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
		Source:          "Environment",
	}, nil
}

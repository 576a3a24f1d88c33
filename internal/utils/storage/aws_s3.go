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
)

const defaultS3Folder = "uploads"

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint switches the client to path-style addressing against an
	// S3-compatible server (MinIO, DigitalOcean Spaces, ...).
	Endpoint string
	// PublicURL is the base used for returned image links. Defaults to the
	// virtual-hosted AWS URL of the bucket.
	PublicURL string
}

type AwsS3 struct {
	client    *s3.Client
	bucket    string
	folder    string
	publicURL string
}

func NewAwsS3(ctx context.Context, cfg S3Config) (*AwsS3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET is required for s3 storage")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newAwsS3(client, cfg), nil
}

func newAwsS3(client *s3.Client, cfg S3Config) *AwsS3 {
	publicURL := cfg.PublicURL
	switch {
	case publicURL != "":
	case cfg.Endpoint != "":
		publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &AwsS3{
		client:    client,
		bucket:    cfg.Bucket,
		folder:    defaultS3Folder,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *AwsS3) Save(ctx context.Context, fileName, contentType string, body io.ReadSeeker) (string, error) {
	objectKey := s.folder + "/" + fileName
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s to s3: %w", objectKey, err)
	}
	return s.GetPublicLinkKey(objectKey), nil
}

func (s *AwsS3) GetPublicLinkKey(objectKey string) string {
	return s.publicURL + "/" + objectKey
}

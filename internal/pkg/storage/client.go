package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Client wraps the S3 client for media uploads.
type Client struct {
	s3Client *s3.Client
	config   *Config
}

// NewClient creates a storage client and makes sure the bucket exists.
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("media storage is not configured")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		// MinIO serves buckets on the path, not as subdomains
		o.UsePathStyle = true
	})

	client := &Client{s3Client: s3Client, config: cfg}
	if err := client.ensureBucket(); err != nil {
		return nil, err
	}

	log.Infof("[Storage] connected to bucket %s", cfg.Bucket)
	return client, nil
}

func (c *Client) ensureBucket() error {
	ctx := context.Background()
	_, err := c.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.config.Bucket),
	})
	if err == nil {
		return nil
	}

	log.Warnf("[Storage] bucket %s not found, creating it", c.config.Bucket)
	if _, err := c.s3Client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(c.config.Bucket),
	}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", c.config.Bucket, err)
	}
	return nil
}

// Upload stores the data under a fresh uuid-based key and returns the
// object's public URL.
func (c *Client) Upload(ctx context.Context, data io.Reader, contentType, originalName string) (string, error) {
	key := ObjectKey(originalName)

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.config.Bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return c.config.ObjectURL(key), nil
}

// ObjectKey builds a unique object key, keeping the original extension.
func ObjectKey(originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return uuid.NewString() + ext
}

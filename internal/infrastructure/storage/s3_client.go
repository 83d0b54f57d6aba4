package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"aquashield/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingStorageBucket = errors.New("missing STORAGE_BUCKET")

// S3Client stores uploaded blueprints and site photos in an S3-compatible
// bucket (AWS S3, Cloudflare R2, MinIO).
//
// Supported env vars:
//   - STORAGE_BUCKET (required)
//   - STORAGE_PUBLIC_BASE_URL (default: https://<bucket>.s3.amazonaws.com)
//   - STORAGE_ENDPOINT (optional; e.g. an R2 or MinIO endpoint)
//   - STORAGE_REGION (default: us-east-1)
//   - STORAGE_ACCESS_KEY / STORAGE_SECRET_KEY (default: ambient AWS creds)

type S3Client struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IFileStorage = (*S3Client)(nil)

func NewS3Client(ctx context.Context) (*S3Client, error) {
	bucket := strings.TrimSpace(os.Getenv("STORAGE_BUCKET"))
	if bucket == "" {
		log.Printf("[storage][s3] missing STORAGE_BUCKET")
		return nil, ErrMissingStorageBucket
	}

	region := getenvDefault("STORAGE_REGION", "us-east-1")
	endpoint := os.Getenv("STORAGE_ENDPOINT")
	baseURL := getenvDefault("STORAGE_PUBLIC_BASE_URL", fmt.Sprintf("https://%s.s3.amazonaws.com", bucket))

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	accessKey := os.Getenv("STORAGE_ACCESS_KEY")
	secretKey := os.Getenv("STORAGE_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Printf("[storage][s3] failed loading aws config err=%v", err)
		return nil, err
	}
	log.Printf("[storage][s3] client initialized bucket=%s", bucket)

	return &S3Client{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload writes the object and returns its public URL.
func (c *S3Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", c.baseURL, key), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

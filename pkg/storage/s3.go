package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Options configures an S3-compatible bucket (AWS, R2, MinIO).
type S3Options struct {
	Endpoint      string // empty for AWS itself
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicURL     string
	UploadTimeout time.Duration
}

type S3Storage struct {
	client        *s3.Client
	bucketName    string
	publicURL     string
	uploadTimeout time.Duration
}

func NewS3Storage(ctx context.Context, opts S3Options) (*S3Storage, error) {
	region := opts.Region
	if region == "" {
		region = "auto"
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Storage{
		client:        client,
		bucketName:    opts.Bucket,
		publicURL:     strings.TrimSuffix(opts.PublicURL, "/"),
		uploadTimeout: opts.UploadTimeout,
	}, nil
}

// UploadBuffer stores data under folder with a generated name and returns its
// public URL.
func (s *S3Storage) UploadBuffer(ctx context.Context, folder string, data []byte, contentType string) (string, error) {
	key := ObjectKey(folder, contentType)

	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	_, err := s.client.PutObject(uploadCtx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

// DeleteFile deletes an object by its public URL. URLs outside this bucket's
// public domain are rejected.
func (s *S3Storage) DeleteFile(ctx context.Context, fileURL string) error {
	key, err := KeyFromURL(s.publicURL, fileURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ObjectKey builds folder/<uuid><ext> for a content type.
func ObjectKey(folder, contentType string) string {
	ext := ".bin"
	switch contentType {
	case "image/webp":
		ext = ".webp"
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	}
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}
	return folder + "/" + uuid.NewString() + ext
}

// KeyFromURL strips publicURL from fileURL.
func KeyFromURL(publicURL, fileURL string) (string, error) {
	if publicURL == "" || !strings.HasPrefix(fileURL, publicURL+"/") {
		return "", fmt.Errorf("invalid file URL: domain mismatch")
	}
	key := strings.TrimPrefix(fileURL, publicURL+"/")
	if key == "" {
		return "", fmt.Errorf("invalid file key derived from URL")
	}
	return key, nil
}

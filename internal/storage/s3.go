package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"fitbuddy/backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// s3Storage implements MediaHost using an S3-compatible backend.
type s3Storage struct {
	client     *s3.Client
	bucketName string
	baseURL    string // Public URL prefix for object keys, no trailing slash
	log        zerolog.Logger
}

// NewS3Storage creates a new S3 media host.
func NewS3Storage(ctx context.Context, cfg config.MediaConfig, log zerolog.Logger) (MediaHost, error) {
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// S3-compatible hosts (MinIO, Spaces) need path-style addressing.
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		// Failures surface to the caller once.
		o.Retryer = aws.NopRetryer{}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	log.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.BucketName).
		Msg("media storage initialized")

	return &s3Storage{
		client:     s3Client,
		bucketName: cfg.BucketName,
		baseURL:    PublicBaseURL(cfg),
		log:        log,
	}, nil
}

// PublicBaseURL returns the prefix that turns an object key into a public
// URL: the configured public URL, the path-style endpoint URL, or the
// virtual-hosted AWS URL, in that order.
func PublicBaseURL(cfg config.MediaConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.BucketName
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.BucketName, cfg.Region)
}

// Upload puts the staged file under profiles/<uuid><ext>.
func (s *s3Storage) Upload(ctx context.Context, localPath string) (*UploadedObject, error) {
	mtype, err := mimetype.DetectFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("detect content type: %w", err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open staged file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat staged file: %w", err)
	}

	objectKey := path.Join(ProfilePrefix, uuid.NewString()+mtype.Extension())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(objectKey),
		Body:          f,
		ContentType:   aws.String(mtype.String()),
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object")
		return nil, err
	}

	return &UploadedObject{
		Key:         objectKey,
		URL:         s.baseURL + "/" + objectKey,
		ContentType: mtype.String(),
	}, nil
}

// DeleteObject removes an object from the S3 bucket.
func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", objectKey).Str("bucket", s.bucketName).Msg("failed to delete object")
		return err
	}

	s.log.Info().Str("key", objectKey).Str("bucket", s.bucketName).Msg("deleted object")
	return nil
}

package storage

import (
	"context"
	"fitmanager/routine-service/internal/config"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

// s3Storage implements the FileStorage interface using an S3-compatible backend.
type s3Storage struct {
	presignClient *s3.PresignClient
	bucketName    string
	publicBaseURL string
	log           logrus.FieldLogger
}

// NewS3Storage creates a new S3 storage service instance.
func NewS3Storage(ctx context.Context, cfg config.S3Config, log logrus.FieldLogger) (FileStorage, error) {
	if !cfg.Enabled() {
		return nil, ErrStorageDisabled
	}

	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(cfg.Region)}
	// Static keys when configured, otherwise the default credential chain.
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.WithError(err).Error("Failed to load AWS SDK config for S3")
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// S3-compatible endpoint (MinIO, Spaces); these need path-style addressing.
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.BucketName,
	}).Info("S3 storage initialized")

	return &s3Storage{
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    cfg.BucketName,
		publicBaseURL: publicBase(cfg),
		log:           log,
	}, nil
}

// GeneratePresignedUploadURL creates a temporary URL for uploading (PUT).
func (s *s3Storage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	presignParams := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType), // Client MUST send the same Content-Type header
	}

	req, err := s.presignClient.PresignPutObject(ctx, presignParams, s3.WithPresignExpires(expires))
	if err != nil {
		s.log.WithError(err).WithField("object_key", objectKey).Error("Failed to generate presigned PUT URL")
		return "", err
	}

	return req.URL, nil
}

func (s *s3Storage) PublicURL(objectKey string) string {
	return s.publicBaseURL + strings.TrimLeft(objectKey, "/")
}

// publicBase falls back to the path-style bucket URL when no CDN base is configured.
func publicBase(cfg config.S3Config) string {
	base := cfg.PublicBaseURL
	if base == "" {
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = "https://s3." + cfg.Region + ".amazonaws.com"
		}
		base = strings.TrimRight(endpoint, "/") + "/" + cfg.BucketName
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

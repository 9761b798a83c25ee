package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"equihire/screening-engine/internal/config"
)

// StorageService issues short-lived links to, and reads, private candidate files.
type StorageService interface {
	PresignDownload(ctx context.Context, key string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Expiry() time.Duration
}

type storageService struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
	maxSize   int64
}

// NewStorageService builds an R2 client from cfg. R2 speaks the S3 API with
// SigV4 and the "auto" region.
func NewStorageService(cfg config.StorageConfig) StorageService {
	client := s3.New(s3.Options{
		Region:       "auto",
		BaseEndpoint: aws.String(cfg.EndpointURL()),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 300 * time.Second
	}

	return &storageService{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		expiry:    expiry,
		maxSize:   cfg.MaxCVSize,
	}
}

// CandidateResumeKey is the object key of a candidate's original CV.
func CandidateResumeKey(candidateID string) string {
	return fmt.Sprintf("candidates/%s/resume.pdf", candidateID)
}

func (s *storageService) Expiry() time.Duration {
	return s.expiry
}

// PresignDownload implements StorageService.
func (s *storageService) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}

	return req.URL, nil
}

// Download implements StorageService. Objects larger than the configured
// maximum are rejected.
func (s *storageService) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	reader := io.Reader(out.Body)
	if s.maxSize > 0 {
		reader = io.LimitReader(out.Body, s.maxSize+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("object %s exceeds max size of %d bytes", key, s.maxSize)
	}

	return data, nil
}

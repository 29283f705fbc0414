package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cutmodel/model-match/internal/config"
)

type Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Custom endpoint for S3-compatible storage (minio etc).
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		publicURL: cfg.S3PublicURL,
	}
}

// UploadWebP stores the encoded image under a random key and returns the
// public URL.
func (u *Uploader) UploadWebP(ctx context.Context, prefix string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	if u.publicURL != "" {
		return fmt.Sprintf("%s/%s", u.publicURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

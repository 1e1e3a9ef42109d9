package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"supportal/internal/shared/biztime"
	"supportal/internal/shared/config"
	"supportal/internal/shared/utils"
)

// S3AttachmentStore uploads request images to an S3 bucket and returns
// their public object URLs.
type S3AttachmentStore struct {
	svc    *s3.S3
	bucket string
	region string
}

func NewS3AttachmentStore(cfg *config.StorageConfig) (*S3AttachmentStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.S3Region),
		Credentials: credentials.NewStaticCredentials(cfg.S3AccessKeyID, cfg.S3SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3AttachmentStore{
		svc:    s3.New(sess),
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}, nil
}

func (s *S3AttachmentStore) Upload(ctx context.Context, requestID uint, filename, contentType string, data []byte) (string, error) {
	key := objectKey(requestID, filename)

	_, err := s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// objectKey namespaces uploads per request and prefixes a timestamp so two
// uploads with the same filename never collide.
func objectKey(requestID uint, filename string) string {
	return fmt.Sprintf("%d/%d_%s", requestID, biztime.NowUTC().UnixMilli(), utils.SanitizeFilename(filename))
}

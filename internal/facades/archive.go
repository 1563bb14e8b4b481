package facades

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// ObjectPutter is the part of the S3 client used by the archive.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ResumeArchiveFacade stores analyzed resumes in an S3 compatible bucket.
type ResumeArchiveFacade struct {
	client ObjectPutter
	bucket string
}

// NewResumeArchiveFacade creates an archive writing to bucket.
func NewResumeArchiveFacade(client ObjectPutter, bucket string) *ResumeArchiveFacade {
	return &ResumeArchiveFacade{client: client, bucket: bucket}
}

// NewS3Client builds an S3 client from static credentials. endpoint may point
// at an S3 compatible service such as R2 or MinIO.
func NewS3Client(ctx context.Context, region, endpoint, accessKey, secretKey string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Archive uploads the resume and returns its object key.
func (f *ResumeArchiveFacade) Archive(ctx context.Context, upload models.ResumeUpload) (string, error) {
	key := "resumes/" + uuid.NewString() + strings.ToLower(filepath.Ext(upload.Filename))

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(upload.Data),
		ContentType: aws.String(contentType),
	})

	logger.FromContext(ctx).Infow(
		"archive resume",
		"bucket", f.bucket,
		"key", key,
		"size", len(upload.Data),
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return key, nil
}

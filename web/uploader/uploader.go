package uploader

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

// Service describes uploader interface.
type Service interface {
	Upload(context.Context, string, io.Reader) (string, error)
}

type impl struct {
	s3manager  s3manageriface.UploaderAPI
	bucketName string
}

// New returns uploader implementation publishing thumbnails to the s3 bucket.
func New(s3manager s3manageriface.UploaderAPI, bucketName string) Service {
	return &impl{s3manager: s3manager, bucketName: bucketName}
}

// Upload uploads thumbnail to s3 bucket and returns link for download.
func (s *impl) Upload(ctx context.Context, fileName string, r io.Reader) (string, error) {
	result, err := s.s3manager.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(fileName),
		Body:        r,
		ACL:         aws.String("public-read"),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("can't upload %s with error: %w", fileName, err)
	}

	return result.Location, nil
}

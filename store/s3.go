package store

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"

	"school-stats/models"
)

// NewS3Client creates an S3 client for region. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain.
func NewS3Client(region, accessKey, secretKey string) (s3iface.S3API, error) {
	cfg := &aws.Config{}
	if region != "" {
		cfg.Region = aws.String(region)
	}
	if accessKey != "" && secretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS session")
	}
	return s3.New(sess), nil
}

// S3Source reads the dataset from an S3 object. Keys ending in .gz or .zst
// are decompressed.
type S3Source struct {
	Client s3iface.S3API
	Bucket string
	Key    string
}

func (s S3Source) String() string { return "s3://" + s.Bucket + "/" + s.Key }

func (s S3Source) Entries(ctx context.Context) ([]models.RawEntry, error) {
	out, err := s.Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dataset object")
	}
	defer out.Body.Close()

	return readEntries(s.Key, out.Body)
}

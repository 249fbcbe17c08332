package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
)

// objectGetter is the part of *s3.Client the source needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a JSON or YAML catalog object from an S3-compatible bucket.
type S3Source struct {
	client objectGetter
	bucket string
	key    string
	format Format
}

// NewS3Source builds a client from opts. Static credentials are used when
// AccessKey is set, otherwise the default AWS credential chain applies.
// BaseEndpoint points the client at MinIO or another compatible store.
func NewS3Source(ctx context.Context, opts S3Options) (*S3Source, error) {
	if opts.Bucket == "" || opts.Key == "" {
		return nil, fmt.Errorf("%w: s3 bucket and key are required", common.ErrorInvalidArgument)
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Source(client, opts.Bucket, opts.Key)
}

func newS3Source(client objectGetter, bucket, key string) (*S3Source, error) {
	format, err := FormatFromName(key)
	if err != nil {
		return nil, err
	}
	return &S3Source{client: client, bucket: bucket, key: key, format: format}, nil
}

func (s *S3Source) Load(ctx context.Context) ([]garage.Vehicle, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	return Decode(out.Body, s.format)
}

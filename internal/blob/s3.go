package blob

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/taskdepot/taskdepot/internal/conf"
	"github.com/taskdepot/taskdepot/internal/errs"
)

// S3Driver keeps blobs in an S3 (or S3-compatible) bucket.
type S3Driver struct {
	client *s3.S3
	bucket string
}

func NewS3(cfg conf.S3) (*S3Driver, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.ForcePathStyle),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed create aws session")
	}
	return &S3Driver{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

func (d *S3Driver) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := d.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return errors.Wrapf(err, "failed put object %s", key)
}

func (d *S3Driver) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := d.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, errors.WithStack(errs.BlobNotFound)
		}
		return nil, errors.Wrapf(err, "failed get object %s", key)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	return data, errors.Wrapf(err, "failed read object %s", key)
}

func (d *S3Driver) Delete(ctx context.Context, key string) error {
	// S3 DeleteObject is a no-op on missing keys, which is exactly the
	// best-effort semantic the delete path wants.
	_, err := d.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	return errors.Wrapf(err, "failed delete object %s", key)
}

func (d *S3Driver) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := d.client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(d.bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed list objects with prefix %s", prefix)
	}
	return keys, nil
}

func isNoSuchKey(err error) bool {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return aerr.Code() == s3.ErrCodeNoSuchKey
	}
	return false
}

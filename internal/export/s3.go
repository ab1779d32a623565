package export

import (
	"bytes"
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/strata-dev/strata/internal/errors"
)

// S3Publisher uploads an exported site to an S3 bucket.
type S3Publisher struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher for the given bucket. prefix may be
// empty; with a prefix every key is uploaded under it.
func NewS3Publisher(client *s3.Client, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.TrimPrefix(prefix, "/"),
	}
}

// NewS3Client builds an S3 client from the default AWS credential chain.
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.New("E061").
			WithDetail("Could not load AWS configuration").
			WithSuggestion("Set AWS credentials in the environment or ~/.aws").
			Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}

// PublishDir uploads every file under dir, preserving relative paths as
// object keys. Returns the number of objects uploaded.
func (p *S3Publisher) PublishDir(ctx context.Context, dir string) (int, error) {
	uploaded := 0

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		key := filepath.ToSlash(rel)
		if p.prefix != "" {
			key = strings.TrimSuffix(p.prefix, "/") + "/" + key
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return err
		}

		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, errors.New("E061").Wrap(err)
	}

	return uploaded, nil
}

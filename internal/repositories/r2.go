package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const (
	r2KeyPrefix       = "posts"
	presignedGetTTL   = 15 * time.Minute
	defaultR2Endpoint = "https://%s.r2.cloudflarestorage.com"
)

// R2Storage keeps uploads in a Cloudflare R2 bucket through its S3 API.
type R2Storage struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucketName string
}

// NewR2Storage builds the client from static credentials. An empty endpoint
// selects the account's default R2 endpoint.
func NewR2Storage(accessKey, secretKey, accountID, bucketName, region, endpoint string) (*R2Storage, error) {
	if bucketName == "" {
		return nil, errors.New("r2: bucket name is required")
	}
	if endpoint == "" {
		if accountID == "" {
			return nil, errors.New("r2: account id or endpoint is required")
		}
		endpoint = fmt.Sprintf(defaultR2Endpoint, accountID)
	}

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	slog.Info("initialized R2 client", "bucket", bucketName, "endpoint", endpoint)
	return &R2Storage{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucketName: bucketName,
	}, nil
}

func objectKey(name string) string {
	return path.Join(r2KeyPrefix, path.Base(name))
}

func (r *R2Storage) Save(ctx context.Context, name, contentType string, body io.Reader, size int64) error {
	// Payload signing needs a seekable body.
	if _, ok := body.(io.ReadSeeker); !ok {
		buf, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("r2 put %s: read body: %w", name, err)
		}
		body = bytes.NewReader(buf)
		size = int64(len(buf))
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(objectKey(name)),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := r.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("r2 put %s: %w", name, err)
	}
	return nil
}

func (r *R2Storage) Delete(ctx context.Context, name string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(objectKey(name)),
	})
	if err != nil {
		return fmt.Errorf("r2 delete %s: %w", name, err)
	}
	return nil
}

// Resolve checks the object exists and returns a presigned download URL.
func (r *R2Storage) Resolve(ctx context.Context, name string) (StoredImage, error) {
	exists, err := r.objectExists(ctx, objectKey(name))
	if err != nil {
		return StoredImage{}, err
	}
	if !exists {
		return StoredImage{}, fmt.Errorf("%w: %q", ErrImageNotFound, name)
	}
	url, err := r.presignedGetURL(ctx, objectKey(name), presignedGetTTL)
	if err != nil {
		return StoredImage{}, err
	}
	return StoredImage{URL: url}, nil
}

func (r *R2Storage) presignedGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// objectExists returns false without error when the bucket has no such key.
func (r *R2Storage) objectExists(ctx context.Context, key string) (bool, error) {
	_, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *s3types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

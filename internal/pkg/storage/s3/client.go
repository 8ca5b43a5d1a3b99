package s3aws

import (
	"bytes"
	"context"
	"fmt"
	"go-storefront/internal/pkg/logger"
	"go-storefront/internal/pkg/redis"
	"go-storefront/internal/pkg/storage"
	"io/fs"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const presignTTL = 3 * 24 * time.Hour

type S3Config struct {
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// S3Client is the S3 backed AssetStore. Presigned URLs are cached in Redis
// when a client is supplied.
type S3Client struct {
	Client     s3iface.S3API
	BucketName string
	redis      redis.IRedis
}

var _ storage.AssetStore = (*S3Client)(nil)

func newSession(cfg S3Config) (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func NewS3Client(ctx context.Context, cfg S3Config, bucketName string, redis redis.IRedis) (*S3Client, error) {
	sess, err := newSession(cfg)
	if err != nil {
		return nil, err
	}

	s3Client := NewWithAPI(s3.New(sess), bucketName, redis)

	isBucketExists, err := s3Client.bucketExists(ctx)
	if err != nil {
		return nil, err
	}

	if !isBucketExists {
		if err = s3Client.createBucket(ctx); err != nil {
			return nil, err
		}
	}

	return s3Client, nil
}

// NewWithAPI wraps an existing S3 API implementation.
func NewWithAPI(api s3iface.S3API, bucketName string, redis redis.IRedis) *S3Client {
	return &S3Client{Client: api, BucketName: bucketName, redis: redis}
}

func (s *S3Client) bucketExists(ctx context.Context) (bool, error) {
	_, err := s.Client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.BucketName),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3Client) createBucket(ctx context.Context) error {
	logger.Info.Println("Creating bucket:", s.BucketName)
	_, err := s.Client.CreateBucketWithContext(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.BucketName),
	})
	return err
}

func isNotFound(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchBucket, s3.ErrCodeNoSuchKey, "NotFound":
			return true
		}
	}
	return false
}

func (s *S3Client) Location(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.BucketName, strings.TrimPrefix(key, "/"))
}

// Write uploads data unless key already exists; existing objects are never
// overwritten.
func (s *S3Client) Write(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	_, err := s.Client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	})
	if err == nil {
		return s.Location(key), storage.ErrObjectExists
	}
	if !isNotFound(err) {
		return "", fmt.Errorf("failed to check object %s: %w", key, err)
	}

	_, err = s.Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.BucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return s.Location(key), nil
}

// URL returns a presigned GET URL for key.
func (s *S3Client) URL(ctx context.Context, key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	cacheKey := fmt.Sprintf("s3:%s:%s", s.BucketName, key)
	if s.redis != nil {
		cached, err := s.redis.Get(cacheKey)
		if err == nil && strings.HasPrefix(cached, "http") {
			return cached, nil
		}
	}

	_, err := s.Client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%s: %w", key, fs.ErrNotExist)
		}
		return "", fmt.Errorf("failed to check object %s: %w", key, err)
	}

	req, _ := s.Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket:                     aws.String(s.BucketName),
		Key:                        aws.String(key),
		ResponseContentType:        aws.String("image/webp"),
		ResponseContentDisposition: aws.String("inline"),
	})
	req.SetContext(ctx)

	urlStr, err := req.Presign(presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	if s.redis != nil {
		// Expire the cache entry well before the signature does.
		if err := s.redis.Set(cacheKey, urlStr, presignTTL-time.Hour); err != nil {
			logger.Warning.Printf("failed to cache presigned URL for %s: %v", key, err)
		}
	}

	return urlStr, nil
}

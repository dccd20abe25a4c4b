package imagemirror

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lookia/lookia/internal/domain/imageproxy"
)

const objectPrefix = "proxy-image/"

// S3Config describes an S3-compatible bucket such as Cloudflare R2 or MinIO.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

// S3Mirror stores proxied images in an S3-compatible bucket.
type S3Mirror struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewS3Mirror constructs the mirror and makes sure the bucket exists.
func NewS3Mirror(ctx context.Context, cfg S3Config, logger *slog.Logger) (*S3Mirror, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       !strings.HasPrefix(strings.ToLower(strings.TrimSpace(cfg.Endpoint)), "http://"),
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init image mirror client: %w", err)
	}
	m := &S3Mirror{client: client, bucket: cfg.Bucket, logger: logger.With("component", "imagemirror.s3")}
	if err := m.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure image mirror bucket: %w", err)
	}
	return m, nil
}

func (m *S3Mirror) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err == nil && exists {
		return nil
	}
	err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	return nil
}

// Get returns the mirrored image; found is false when the object does not exist.
func (m *S3Mirror) Get(ctx context.Context, key string) (imageproxy.Image, bool, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, objectPrefix+key, minio.GetObjectOptions{})
	if err != nil {
		return imageproxy.Image{}, false, err
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		if isNotFound(err) {
			return imageproxy.Image{}, false, nil
		}
		return imageproxy.Image{}, false, err
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return imageproxy.Image{}, false, err
	}
	return imageproxy.Image{Data: data, ContentType: info.ContentType}, true, nil
}

// Put uploads the image as a single part.
func (m *S3Mirror) Put(ctx context.Context, key string, img imageproxy.Image) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectPrefix+key, bytes.NewReader(img.Data), int64(len(img.Data)), minio.PutObjectOptions{
		ContentType:      img.ContentType,
		CacheControl:     "public, max-age=31536000, immutable",
		DisableMultipart: true,
	})
	return err
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

var _ imageproxy.Mirror = (*S3Mirror)(nil)

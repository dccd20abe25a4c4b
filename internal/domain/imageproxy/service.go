package imageproxy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	apperrors "github.com/lookia/lookia/pkg/errors"
)

const (
	cacheImmutable   = "public, max-age=31536000, immutable"
	cachePlaceholder = "public, max-age=3600"
	defaultMediaType = "image/jpeg"
)

// Image is a fetched image body.
type Image struct {
	Data        []byte
	ContentType string
}

// Fetcher downloads an image from the image host.
type Fetcher interface {
	Fetch(ctx context.Context, imageID, rawQuery string) (Image, error)
}

// Mirror is an optional object store consulted before the image host.
type Mirror interface {
	Get(ctx context.Context, key string) (Image, bool, error)
	Put(ctx context.Context, key string, img Image) error
}

// Config wires placeholder settings.
type Config struct {
	PlaceholderID    string
	PlaceholderQuery string
}

// Served is the image plus the caching policy to send with it.
type Served struct {
	Image
	CacheControl string
	Placeholder  bool
}

// Service proxies images with a placeholder fallback.
type Service interface {
	Get(ctx context.Context, imageID, rawQuery string) (Served, error)
}

type service struct {
	cfg     Config
	fetcher Fetcher
	mirror  Mirror
	logger  *slog.Logger
}

// NewService wires the image proxy. mirror may be nil.
func NewService(cfg Config, fetcher Fetcher, mirror Mirror, logger *slog.Logger) Service {
	if cfg.PlaceholderID == "" {
		cfg.PlaceholderID = "photo-1441986300917-64674bd600d8"
		cfg.PlaceholderQuery = "w=400&h=600&fit=crop&crop=center"
	}
	return &service{
		cfg:     cfg,
		fetcher: fetcher,
		mirror:  mirror,
		logger:  logger.With("component", "imageproxy.service"),
	}
}

func (s *service) Get(ctx context.Context, imageID, rawQuery string) (Served, error) {
	imageID = strings.Trim(strings.TrimSpace(imageID), "/")
	if imageID == "" {
		return Served{}, apperrors.Wrap(apperrors.CodeInvalidInput, "Image ID is required", nil)
	}
	key := MirrorKey(imageID, rawQuery)

	if s.mirror != nil {
		img, found, err := s.mirror.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("image mirror read failed", "key", key, "error", err)
		case found:
			return Served{Image: withMediaType(img), CacheControl: cacheImmutable}, nil
		}
	}

	img, err := s.fetcher.Fetch(ctx, imageID, rawQuery)
	if err == nil {
		img = withMediaType(img)
		if s.mirror != nil {
			if perr := s.mirror.Put(ctx, key, img); perr != nil {
				s.logger.Warn("image mirror write failed", "key", key, "error", perr)
			}
		}
		return Served{Image: img, CacheControl: cacheImmutable}, nil
	}
	s.logger.Warn("image fetch failed, serving placeholder", "image_id", imageID, "error", err)

	placeholder, perr := s.fetcher.Fetch(ctx, s.cfg.PlaceholderID, s.cfg.PlaceholderQuery)
	if perr != nil {
		return Served{}, apperrors.Wrap(apperrors.CodeUpstream, "Failed to load image", perr)
	}
	placeholder.ContentType = defaultMediaType
	return Served{Image: placeholder, CacheControl: cachePlaceholder, Placeholder: true}, nil
}

// MirrorKey derives a stable object key from the image id and its sizing query.
func MirrorKey(imageID, rawQuery string) string {
	if rawQuery == "" {
		return imageID
	}
	sum := sha256.Sum256([]byte(rawQuery))
	return imageID + "/" + hex.EncodeToString(sum[:8])
}

func withMediaType(img Image) Image {
	if img.ContentType == "" {
		img.ContentType = defaultMediaType
	}
	return img
}

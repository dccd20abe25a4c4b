package imageproxy

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/lookia/lookia/pkg/errors"
)

type stubFetcher struct {
	images map[string]Image
	calls  []string
}

func (s *stubFetcher) Fetch(_ context.Context, imageID, rawQuery string) (Image, error) {
	s.calls = append(s.calls, imageID+"?"+rawQuery)
	img, ok := s.images[imageID]
	if !ok {
		return Image{}, errors.New("status 404")
	}
	return img, nil
}

type memMirror struct {
	objects map[string]Image
	getErr  error
}

func (m *memMirror) Get(_ context.Context, key string) (Image, bool, error) {
	if m.getErr != nil {
		return Image{}, false, m.getErr
	}
	img, ok := m.objects[key]
	return img, ok, nil
}

func (m *memMirror) Put(_ context.Context, key string, img Image) error {
	m.objects[key] = img
	return nil
}

const placeholderID = "photo-1441986300917-64674bd600d8"

func newTestService(f Fetcher, m Mirror) Service {
	return NewService(Config{}, f, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetRequiresID(t *testing.T) {
	_, err := newTestService(&stubFetcher{}, nil).Get(context.Background(), " / ", "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestGetFetchesAndMirrors(t *testing.T) {
	fetcher := &stubFetcher{images: map[string]Image{"photo-1": {Data: []byte("png"), ContentType: "image/png"}}}
	mirror := &memMirror{objects: map[string]Image{}}
	svc := newTestService(fetcher, mirror)

	served, err := svc.Get(context.Background(), "photo-1", "w=400")
	require.NoError(t, err)
	require.Equal(t, "image/png", served.ContentType)
	require.Equal(t, "public, max-age=31536000, immutable", served.CacheControl)
	require.Contains(t, mirror.objects, MirrorKey("photo-1", "w=400"))

	// second call is served from the mirror
	_, err = svc.Get(context.Background(), "photo-1", "w=400")
	require.NoError(t, err)
	require.Len(t, fetcher.calls, 1)
}

func TestGetServesPlaceholderOnFailure(t *testing.T) {
	fetcher := &stubFetcher{images: map[string]Image{placeholderID: {Data: []byte("jpg"), ContentType: "image/webp"}}}
	served, err := newTestService(fetcher, &memMirror{getErr: errors.New("bucket down")}).Get(context.Background(), "photo-missing", "")
	require.NoError(t, err)
	require.True(t, served.Placeholder)
	require.Equal(t, "image/jpeg", served.ContentType)
	require.Equal(t, "public, max-age=3600", served.CacheControl)
	require.Equal(t, placeholderID+"?w=400&h=600&fit=crop&crop=center", fetcher.calls[1])
}

func TestGetFailsWhenPlaceholderFails(t *testing.T) {
	_, err := newTestService(&stubFetcher{}, nil).Get(context.Background(), "photo-missing", "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeUpstream))
	require.Equal(t, "Failed to load image", apperrors.MessageOf(err))
}

func TestMirrorKey(t *testing.T) {
	require.Equal(t, "photo-1", MirrorKey("photo-1", ""))
	require.NotEqual(t, MirrorKey("photo-1", "w=1"), MirrorKey("photo-1", "w=2"))
}

package feedbackrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lookia/lookia/internal/domain/feedback"
)

func TestMemoryRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Append(ctx, feedback.Record{ID: id, Feedback: feedback.Like, CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, ids(all))

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b"}, ids(limited))

	dislike := feedback.Dislike
	reason := "muito formal"
	updated, found, err := repo.UpdateByID(ctx, "b", feedback.Patch{Feedback: &dislike, Reason: &reason})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, feedback.Dislike, updated.Feedback)
	require.Equal(t, "muito formal", *updated.Reason)

	reason = "mutated"
	stored, found, err := repo.FindByID(ctx, "b")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "muito formal", *stored.Reason)

	_, found, err = repo.UpdateByID(ctx, "missing", feedback.Patch{})
	require.NoError(t, err)
	require.False(t, found)

	removed, err := repo.DeleteByID(ctx, "a")
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = repo.DeleteByID(ctx, "a")
	require.NoError(t, err)
	require.False(t, removed)

	all, err = repo.List(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b"}, ids(all))
}

func ids(records []feedback.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

package lookbook_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lookia/lookia/internal/domain/look"
	"github.com/lookia/lookia/internal/domain/lookbook"
	"github.com/lookia/lookia/internal/infra/lookbookrepo"
	apperrors "github.com/lookia/lookia/pkg/errors"
)

func newTestService() lookbook.Service {
	return lookbook.NewService(lookbookrepo.NewMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func boolPtr(v bool) *bool { return &v }

func TestSaveRequiresDescription(t *testing.T) {
	svc := newTestService()
	_, err := svc.Save(context.Background(), lookbook.SaveRequest{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Save(context.Background(), lookbook.SaveRequest{Look: &look.Recommendation{}})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestSaveDefaultsCollections(t *testing.T) {
	saved, err := newTestService().Save(context.Background(), lookbook.SaveRequest{Look: &look.Recommendation{Descricao: "vestido midi"}})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.False(t, saved.IsFavorite)
	require.NotNil(t, saved.Imagens)
	require.NotNil(t, saved.Dicas)
	require.NotNil(t, saved.Acessorios)
	require.False(t, saved.CreatedAt.IsZero())
}

func TestFavoriteToggleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	saved, err := svc.Save(ctx, lookbook.SaveRequest{Look: &look.Recommendation{Descricao: "look"}, Profile: &look.Profile{Ocasiao: "festa"}})
	require.NoError(t, err)

	req := lookbook.UpdateRequest{ID: saved.ID, Action: lookbook.ActionFavorite, Data: &lookbook.UpdateData{IsFavorite: boolPtr(true)}}
	for i := 0; i < 2; i++ {
		updated, message, err := svc.Update(ctx, req)
		require.NoError(t, err)
		require.True(t, updated.IsFavorite)
		require.Equal(t, "Look adicionado aos favoritos! ⭐", message)
	}

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	favorites, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	_, message, err := svc.Update(ctx, lookbook.UpdateRequest{ID: saved.ID, Action: lookbook.ActionFavorite, Data: &lookbook.UpdateData{IsFavorite: boolPtr(false)}})
	require.NoError(t, err)
	require.Equal(t, "Look removido dos favoritos", message)
	favorites, err = svc.List(ctx, true)
	require.NoError(t, err)
	require.Empty(t, favorites)
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	saved, err := svc.Save(ctx, lookbook.SaveRequest{Look: &look.Recommendation{Descricao: "look"}})
	require.NoError(t, err)

	_, _, err = svc.Update(ctx, lookbook.UpdateRequest{Action: lookbook.ActionFavorite})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, _, err = svc.Update(ctx, lookbook.UpdateRequest{ID: "missing", Action: "archive"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, _, err = svc.Update(ctx, lookbook.UpdateRequest{ID: saved.ID, Action: "archive"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Equal(t, "Ação não reconhecida", apperrors.MessageOf(err))

	_, _, err = svc.Update(ctx, lookbook.UpdateRequest{ID: saved.ID, Action: lookbook.ActionFavorite})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	saved, err := svc.Save(ctx, lookbook.SaveRequest{Look: &look.Recommendation{Descricao: "look"}})
	require.NoError(t, err)

	require.True(t, apperrors.IsCode(svc.Delete(ctx, " "), apperrors.CodeInvalidInput))
	require.NoError(t, svc.Delete(ctx, saved.ID))
	require.True(t, apperrors.IsCode(svc.Delete(ctx, saved.ID), apperrors.CodeNotFound))
}

package lookbook

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lookia/lookia/internal/domain/look"
	apperrors "github.com/lookia/lookia/pkg/errors"
	"github.com/lookia/lookia/pkg/util"
)

const (
	// SavedMessage acknowledges a stored look.
	SavedMessage = "Look salvo com sucesso no seu lookbook! 💕"
	// DeletedMessage acknowledges a removed look.
	DeletedMessage = "Look removido do lookbook"

	favoritedMessage   = "Look adicionado aos favoritos! ⭐"
	unfavoritedMessage = "Look removido dos favoritos"
	idRequiredMessage  = "ID do look é obrigatório"
	notFoundMessage    = "Look não encontrado"
)

// Service exposes lookbook CRUD.
type Service interface {
	Save(ctx context.Context, req SaveRequest) (SavedLook, error)
	List(ctx context.Context, favoritesOnly bool) ([]SavedLook, error)
	// Update returns the updated look and a user facing message.
	Update(ctx context.Context, req UpdateRequest) (SavedLook, string, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	now    util.Clock
	newID  func() string
	logger *slog.Logger
}

// NewService wires the lookbook domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		now:    util.NowUTC,
		newID:  uuid.NewString,
		logger: logger.With("component", "lookbook.service"),
	}
}

func (s *service) Save(ctx context.Context, req SaveRequest) (SavedLook, error) {
	if req.Look == nil || strings.TrimSpace(req.Look.Descricao) == "" {
		return SavedLook{}, apperrors.Wrap(apperrors.CodeInvalidInput, "Dados do look são obrigatórios", nil)
	}
	profile := look.Profile{}
	if req.Profile != nil {
		profile = *req.Profile
	}
	saved := SavedLook{
		ID:         s.newID(),
		Descricao:  req.Look.Descricao,
		Imagens:    nonNil(req.Look.Imagens),
		Dicas:      nonNil(req.Look.Dicas),
		Acessorios: nonNil(req.Look.Acessorios),
		Profile:    profile,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Append(ctx, saved); err != nil {
		return SavedLook{}, apperrors.Wrap(apperrors.CodeStore, "failed to save look", err)
	}
	s.logger.Info("look saved", "id", saved.ID)
	return saved, nil
}

func (s *service) List(ctx context.Context, favoritesOnly bool) ([]SavedLook, error) {
	looks, err := s.repo.List(ctx, favoritesOnly)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStore, "failed to list looks", err)
	}
	if looks == nil {
		looks = []SavedLook{}
	}
	return looks, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (SavedLook, string, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return SavedLook{}, "", apperrors.Wrap(apperrors.CodeInvalidInput, idRequiredMessage, nil)
	}
	if _, found, err := s.repo.FindByID(ctx, id); err != nil {
		return SavedLook{}, "", apperrors.Wrap(apperrors.CodeStore, "failed to load look", err)
	} else if !found {
		return SavedLook{}, "", apperrors.Wrap(apperrors.CodeNotFound, notFoundMessage, nil)
	}

	if req.Action != ActionFavorite {
		return SavedLook{}, "", apperrors.Wrap(apperrors.CodeInvalidInput, "Ação não reconhecida", nil)
	}
	if req.Data == nil || req.Data.IsFavorite == nil {
		return SavedLook{}, "", apperrors.Wrap(apperrors.CodeInvalidInput, "data.isFavorite é obrigatório", nil)
	}
	favorite := *req.Data.IsFavorite

	updated, found, err := s.repo.UpdateByID(ctx, id, func(l *SavedLook) { l.IsFavorite = favorite })
	if err != nil {
		return SavedLook{}, "", apperrors.Wrap(apperrors.CodeStore, "failed to update look", err)
	}
	if !found {
		return SavedLook{}, "", apperrors.Wrap(apperrors.CodeNotFound, notFoundMessage, nil)
	}

	message := unfavoritedMessage
	if favorite {
		message = favoritedMessage
	}
	return updated, message, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, idRequiredMessage, nil)
	}
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStore, "failed to delete look", err)
	}
	if !removed {
		return apperrors.Wrap(apperrors.CodeNotFound, notFoundMessage, nil)
	}
	s.logger.Info("look deleted", "id", id)
	return nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

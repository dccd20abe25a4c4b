package feedback

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/lookia/lookia/pkg/errors"
	"github.com/lookia/lookia/pkg/util"
)

const (
	recentLimit = 50

	likeMessage    = "💖 Obrigada pelo feedback positivo! Isso me ajuda a criar looks ainda melhores para você!"
	dislikeMessage = "💭 Obrigada pelo feedback! Vou usar essas informações para melhorar minhas sugestões futuras."
	// UpdatedMessage acknowledges a patched entry.
	UpdatedMessage = "Feedback atualizado com sucesso!"
	// DeletedMessage acknowledges a removed entry.
	DeletedMessage = "Feedback removido com sucesso"
)

// Service exposes feedback collection and reporting.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (CreateResponse, error)
	Recent(ctx context.Context) ([]Record, error)
	Stats(ctx context.Context) (Stats, error)
	Update(ctx context.Context, req UpdateRequest) (Record, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	now    util.Clock
	newID  func() string
	logger *slog.Logger
}

// NewService wires the feedback domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		now:    util.NowUTC,
		newID:  uuid.NewString,
		logger: logger.With("component", "feedback.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	if req.UserProfile == nil || req.Recommendation == nil || req.Feedback == "" {
		return CreateResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "Dados obrigatórios: userProfile, recommendation, feedback", nil)
	}
	if !req.Feedback.Valid() {
		return CreateResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, `Feedback deve ser "like" ou "dislike"`, nil)
	}

	record := Record{
		ID:             s.newID(),
		LookID:         req.LookID,
		UserProfile:    *req.UserProfile,
		Recommendation: *req.Recommendation,
		Feedback:       req.Feedback,
		Reason:         req.Reason,
		Suggestions:    req.Suggestions,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Append(ctx, record); err != nil {
		return CreateResponse{}, apperrors.Wrap(apperrors.CodeStore, "failed to store feedback", err)
	}
	s.logger.Info("feedback received", "id", record.ID, "feedback", string(record.Feedback))

	message := dislikeMessage
	if record.Feedback == Like {
		message = likeMessage
	}
	return CreateResponse{Success: true, Message: message, FeedbackID: record.ID}, nil
}

func (s *service) Recent(ctx context.Context) ([]Record, error) {
	records, err := s.repo.List(ctx, recentLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStore, "failed to list feedback", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	records, err := s.repo.List(ctx, 0)
	if err != nil {
		return Stats{}, apperrors.Wrap(apperrors.CodeStore, "failed to list feedback", err)
	}
	return Summarize(records), nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (Record, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return Record{}, apperrors.Wrap(apperrors.CodeInvalidInput, "ID do feedback é obrigatório", nil)
	}
	patch := Patch{Reason: req.Reason, Suggestions: req.Suggestions}
	// Unknown verdicts are ignored rather than rejected.
	if req.Feedback != nil && req.Feedback.Valid() {
		patch.Feedback = req.Feedback
	}

	record, found, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return Record{}, apperrors.Wrap(apperrors.CodeStore, "failed to update feedback", err)
	}
	if !found {
		return Record{}, apperrors.Wrap(apperrors.CodeNotFound, "Feedback não encontrado", nil)
	}
	return record, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "ID do feedback é obrigatório", nil)
	}
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStore, "failed to delete feedback", err)
	}
	if !removed {
		return apperrors.Wrap(apperrors.CodeNotFound, "Feedback não encontrado", nil)
	}
	s.logger.Info("feedback deleted", "id", id)
	return nil
}

// Summarize tallies verdicts overall and per profile category.
func Summarize(records []Record) Stats {
	stats := Stats{
		FeedbackByCategory: CategoryBreakdown{
			Ocasiao:       map[string]Tally{},
			Estilo:        map[string]Tally{},
			Clima:         map[string]Tally{},
			Personalidade: map[string]Tally{},
		},
	}
	for _, r := range records {
		stats.Total++
		like := r.Feedback == Like
		if like {
			stats.Likes++
		} else if r.Feedback == Dislike {
			stats.Dislikes++
		}

		p := r.UserProfile
		clima := p.Clima
		if clima == "" && p.WeatherData != nil {
			clima = p.WeatherData.Condition
		}
		tally(stats.FeedbackByCategory.Ocasiao, p.Ocasiao, like)
		tally(stats.FeedbackByCategory.Estilo, p.Estilo, like)
		tally(stats.FeedbackByCategory.Clima, clima, like)
		tally(stats.FeedbackByCategory.Personalidade, p.Personalidade, like)
	}
	if stats.Total > 0 {
		stats.LikePercentage = int(math.Floor(float64(stats.Likes)*100/float64(stats.Total) + 0.5))
	}
	return stats
}

func tally(bucket map[string]Tally, key string, like bool) {
	if key == "" {
		return
	}
	t := bucket[key]
	if like {
		t.Likes++
	} else {
		t.Dislikes++
	}
	bucket[key] = t
}

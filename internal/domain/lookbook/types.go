package lookbook

import (
	"context"
	"time"

	"github.com/lookia/lookia/internal/domain/look"
)

// SavedLook is a look stored in the user's lookbook.
type SavedLook struct {
	ID         string       `json:"id"`
	Descricao  string       `json:"descricao"`
	Imagens    []string     `json:"imagens"`
	Dicas      []string     `json:"dicas"`
	Acessorios []string     `json:"acessorios"`
	Profile    look.Profile `json:"profile"`
	CreatedAt  time.Time    `json:"createdAt"`
	IsFavorite bool         `json:"isFavorite"`
}

// SaveRequest is the payload for storing a look.
type SaveRequest struct {
	Look    *look.Recommendation `json:"look"`
	Profile *look.Profile        `json:"profile"`
}

// UpdateRequest applies an action to a saved look.
type UpdateRequest struct {
	ID     string      `json:"id"`
	Action string      `json:"action"`
	Data   *UpdateData `json:"data"`
}

// UpdateData carries action arguments.
type UpdateData struct {
	IsFavorite *bool `json:"isFavorite"`
}

// ActionFavorite toggles the favorite flag.
const ActionFavorite = "favorite"

// Repository persists saved looks.
type Repository interface {
	Append(ctx context.Context, saved SavedLook) error
	// List returns looks newest first.
	List(ctx context.Context, favoritesOnly bool) ([]SavedLook, error)
	FindByID(ctx context.Context, id string) (SavedLook, bool, error)
	UpdateByID(ctx context.Context, id string, mutate func(*SavedLook)) (SavedLook, bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

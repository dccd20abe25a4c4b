package feedback

import "context"

// Repository persists feedback records.
type Repository interface {
	Append(ctx context.Context, record Record) error
	// List returns records newest first; limit <= 0 returns all of them.
	List(ctx context.Context, limit int) ([]Record, error)
	FindByID(ctx context.Context, id string) (Record, bool, error)
	UpdateByID(ctx context.Context, id string, patch Patch) (Record, bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

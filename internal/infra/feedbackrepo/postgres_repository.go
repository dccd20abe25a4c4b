package feedbackrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lookia/lookia/internal/domain/feedback"
)

const selectColumns = `id, look_id, user_profile, recommendation, verdict, reason, suggestions, created_at`

// PostgresRepository implements feedback.Repository using pgx. Profile and
// recommendation snapshots are stored as jsonb.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Append implements feedback.Repository.
func (r *PostgresRepository) Append(ctx context.Context, record feedback.Record) error {
	profile, err := json.Marshal(record.UserProfile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	recommendation, err := json.Marshal(record.Recommendation)
	if err != nil {
		return fmt.Errorf("encode recommendation: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO feedback (id, look_id, user_profile, recommendation, verdict, reason, suggestions, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
	`, record.ID, record.LookID, profile, recommendation, string(record.Feedback), record.Reason, record.Suggestions, record.CreatedAt)
	return err
}

// List implements feedback.Repository.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]feedback.Record, error) {
	query := `SELECT ` + selectColumns + ` FROM feedback ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []feedback.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// FindByID implements feedback.Repository.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (feedback.Record, bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM feedback WHERE id = $1`, id)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return feedback.Record{}, false, nil
	}
	if err != nil {
		return feedback.Record{}, false, err
	}
	return record, true, nil
}

// UpdateByID implements feedback.Repository. COALESCE keeps columns whose
// patch field is nil.
func (r *PostgresRepository) UpdateByID(ctx context.Context, id string, patch feedback.Patch) (feedback.Record, bool, error) {
	var verdict *string
	if patch.Feedback != nil {
		v := string(*patch.Feedback)
		verdict = &v
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE feedback
		SET verdict = COALESCE($2, verdict),
		    reason = COALESCE($3, reason),
		    suggestions = COALESCE($4, suggestions)
		WHERE id = $1
		RETURNING `+selectColumns, id, verdict, patch.Reason, patch.Suggestions)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return feedback.Record{}, false, nil
	}
	if err != nil {
		return feedback.Record{}, false, err
	}
	return record, true, nil
}

// DeleteByID implements feedback.Repository.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (feedback.Record, error) {
	var (
		record         feedback.Record
		lookID         *string
		profile        []byte
		recommendation []byte
		verdict        string
	)
	if err := row.Scan(&record.ID, &lookID, &profile, &recommendation, &verdict, &record.Reason, &record.Suggestions, &record.CreatedAt); err != nil {
		return feedback.Record{}, err
	}
	if lookID != nil {
		record.LookID = *lookID
	}
	record.Feedback = feedback.Value(verdict)
	if err := decodeSnapshot(profile, &record.UserProfile); err != nil {
		return feedback.Record{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := decodeSnapshot(recommendation, &record.Recommendation); err != nil {
		return feedback.Record{}, fmt.Errorf("decode recommendation: %w", err)
	}
	record.CreatedAt = record.CreatedAt.UTC()
	return record, nil
}

func decodeSnapshot(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

var _ feedback.Repository = (*PostgresRepository)(nil)

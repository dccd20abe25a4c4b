package lookbookrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/lookia/lookia/internal/domain/lookbook"
)

// ValkeyRepository stores each look as a JSON string and keeps a sorted set
// of ids scored by creation time in milliseconds.
type ValkeyRepository struct {
	client valkey.Client
	prefix string
}

// NewValkeyRepository constructs a repository backed by Valkey.
func NewValkeyRepository(client valkey.Client, prefix string) *ValkeyRepository {
	if prefix == "" {
		prefix = "lookbook"
	}
	return &ValkeyRepository{client: client, prefix: prefix}
}

// Append implements lookbook.Repository.
func (r *ValkeyRepository) Append(ctx context.Context, saved lookbook.SavedLook) error {
	payload, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	results := r.client.DoMulti(ctx,
		r.client.B().Set().Key(r.lookKey(saved.ID)).Value(string(payload)).Build(),
		r.client.B().Zadd().Key(r.indexKey()).ScoreMember().ScoreMember(float64(saved.CreatedAt.UnixMilli()), saved.ID).Build(),
	)
	for _, res := range results {
		if err := res.Error(); err != nil {
			return err
		}
	}
	return nil
}

// List implements lookbook.Repository.
func (r *ValkeyRepository) List(ctx context.Context, favoritesOnly bool) ([]lookbook.SavedLook, error) {
	ids, err := r.client.Do(ctx, r.client.B().Zrevrange().Key(r.indexKey()).Start(0).Stop(-1).Build()).AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.lookKey(id)
	}
	values, err := r.client.Do(ctx, r.client.B().Mget().Key(keys...).Build()).ToArray()
	if err != nil {
		return nil, err
	}

	out := make([]lookbook.SavedLook, 0, len(values))
	for _, v := range values {
		payload, err := v.ToString()
		if err != nil {
			// index entry without a document; skip it
			if valkey.IsValkeyNil(err) {
				continue
			}
			return nil, err
		}
		var saved lookbook.SavedLook
		if err := json.Unmarshal([]byte(payload), &saved); err != nil {
			return nil, fmt.Errorf("decode saved look: %w", err)
		}
		if favoritesOnly && !saved.IsFavorite {
			continue
		}
		out = append(out, saved)
	}
	sortNewestFirst(out)
	return out, nil
}

// FindByID implements lookbook.Repository.
func (r *ValkeyRepository) FindByID(ctx context.Context, id string) (lookbook.SavedLook, bool, error) {
	payload, err := r.client.Do(ctx, r.client.B().Get().Key(r.lookKey(id)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return lookbook.SavedLook{}, false, nil
		}
		return lookbook.SavedLook{}, false, err
	}
	var saved lookbook.SavedLook
	if err := json.Unmarshal([]byte(payload), &saved); err != nil {
		return lookbook.SavedLook{}, false, fmt.Errorf("decode saved look: %w", err)
	}
	return saved, true, nil
}

// UpdateByID implements lookbook.Repository. SET XX keeps a concurrently
// deleted look from being recreated.
func (r *ValkeyRepository) UpdateByID(ctx context.Context, id string, mutate func(*lookbook.SavedLook)) (lookbook.SavedLook, bool, error) {
	saved, found, err := r.FindByID(ctx, id)
	if err != nil || !found {
		return lookbook.SavedLook{}, found, err
	}
	mutate(&saved)
	payload, err := json.Marshal(saved)
	if err != nil {
		return lookbook.SavedLook{}, false, err
	}
	err = r.client.Do(ctx, r.client.B().Set().Key(r.lookKey(id)).Value(string(payload)).Xx().Build()).Error()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return lookbook.SavedLook{}, false, nil
		}
		return lookbook.SavedLook{}, false, err
	}
	return saved, true, nil
}

// DeleteByID implements lookbook.Repository.
func (r *ValkeyRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	results := r.client.DoMulti(ctx,
		r.client.B().Del().Key(r.lookKey(id)).Build(),
		r.client.B().Zrem().Key(r.indexKey()).Member(id).Build(),
	)
	removed, err := results[0].AsInt64()
	if err != nil {
		return false, err
	}
	if err := results[1].Error(); err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (r *ValkeyRepository) lookKey(id string) string {
	return fmt.Sprintf("%s:look:%s", r.prefix, id)
}

func (r *ValkeyRepository) indexKey() string {
	return fmt.Sprintf("%s:looks", r.prefix)
}

var _ lookbook.Repository = (*ValkeyRepository)(nil)

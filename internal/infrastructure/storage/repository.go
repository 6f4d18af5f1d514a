package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"ciao/internal/domain/visitor"

	"golang.org/x/exp/slog"
)

const exportedValue = "true"

// VisitorRepository хранит список посетителей одним JSON-массивом под KeyVisitors.
type VisitorRepository struct {
	store Store
	log   *slog.Logger
}

func NewVisitorRepository(store Store, log *slog.Logger) *VisitorRepository {
	return &VisitorRepository{
		store: store,
		log:   log.With("component", "visitor_repository"),
	}
}

// Load возвращает сохраненный список. Нечитаемое значение заменяется
// пустым списком.
func (r *VisitorRepository) Load(ctx context.Context) ([]visitor.Record, error) {
	raw, ok, err := r.store.Get(ctx, KeyVisitors)
	if err != nil {
		return nil, fmt.Errorf("load visitors: %w", err)
	}
	if !ok {
		return []visitor.Record{}, nil
	}

	var records []visitor.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.log.Warn("stored visitor list is corrupted, resetting", "error", err)
		if err := r.store.Set(ctx, KeyVisitors, "[]"); err != nil {
			return nil, fmt.Errorf("reset visitors: %w", err)
		}
		return []visitor.Record{}, nil
	}
	if records == nil {
		records = []visitor.Record{}
	}
	return records, nil
}

func (r *VisitorRepository) Save(ctx context.Context, records []visitor.Record) error {
	if records == nil {
		records = []visitor.Record{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode visitors: %w", err)
	}
	if err := r.store.Set(ctx, KeyVisitors, string(b)); err != nil {
		return fmt.Errorf("save visitors: %w", err)
	}
	return nil
}

func (r *VisitorRepository) Append(ctx context.Context, rec visitor.Record) error {
	records, err := r.Load(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, append(records, rec))
}

func (r *VisitorRepository) UpdateAt(ctx context.Context, index int, rec visitor.Record) error {
	records, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return visitor.ErrIndexOutOfRange
	}
	records[index] = rec
	return r.Save(ctx, records)
}

func (r *VisitorRepository) RemoveAt(ctx context.Context, index int) (visitor.Record, error) {
	records, err := r.Load(ctx)
	if err != nil {
		return visitor.Record{}, err
	}
	if index < 0 || index >= len(records) {
		return visitor.Record{}, visitor.ErrIndexOutOfRange
	}
	rec := records[index]
	records = append(records[:index], records[index+1:]...)
	return rec, r.Save(ctx, records)
}

func (r *VisitorRepository) Clear(ctx context.Context) error {
	return r.Save(ctx, nil)
}

// FlagRepository помнит, был ли текущий список экспортирован.
type FlagRepository struct {
	store Store
}

func NewFlagRepository(store Store) *FlagRepository {
	return &FlagRepository{store: store}
}

func (r *FlagRepository) Exported(ctx context.Context) (bool, error) {
	v, ok, err := r.store.Get(ctx, KeyExported)
	if err != nil {
		return false, fmt.Errorf("read exported flag: %w", err)
	}
	return ok && v == exportedValue, nil
}

func (r *FlagRepository) MarkExported(ctx context.Context) error {
	return r.store.Set(ctx, KeyExported, exportedValue)
}

func (r *FlagRepository) ClearExported(ctx context.Context) error {
	return r.store.Remove(ctx, KeyExported)
}

// ProfileRepository хранит JSON профиля оператора под KeyProfile.
type ProfileRepository struct {
	store Store
}

func NewProfileRepository(store Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) Get(ctx context.Context) (string, bool, error) {
	return r.store.Get(ctx, KeyProfile)
}

func (r *ProfileRepository) Set(ctx context.Context, raw string) error {
	return r.store.Set(ctx, KeyProfile, raw)
}

func (r *ProfileRepository) Remove(ctx context.Context) error {
	return r.store.Remove(ctx, KeyProfile)
}

package visitor

import (
	"context"
)

// Repository сохраняет список посетителей целиком.
type Repository interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
	Append(ctx context.Context, rec Record) error
	UpdateAt(ctx context.Context, index int, rec Record) error
	RemoveAt(ctx context.Context, index int) (Record, error)
	Clear(ctx context.Context) error
}

// ExportMarker сбрасывает признак экспорта текущего списка.
type ExportMarker interface {
	ClearExported(ctx context.Context) error
}

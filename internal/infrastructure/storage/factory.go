package storage

import (
	"context"
	"fmt"

	"ciao/internal/config"
	"ciao/internal/infrastructure/migration"
	"ciao/internal/infrastructure/storage/postgres"
	"ciao/internal/infrastructure/storage/sqlite"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

// NewByEngine открывает хранилище, выбранное в cfg.Engine.
func NewByEngine(ctx context.Context, cfg config.Storage, fs afero.Fs, log *slog.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Engine {
	case config.StoreSQLite:
		var s *sqlite.Storage
		if s, err = sqlite.New(ctx, cfg.Path, migration.DefaultEngine, log); err == nil {
			store = s
		}
	case config.StorePostgres:
		var s *postgres.Storage
		if s, err = postgres.New(ctx, cfg.DatabaseURI, migration.DefaultEngine, log); err == nil {
			store = s
		}
	case config.StoreFile:
		var s *FileStore
		if s, err = NewFileStore(fs, cfg.Path); err == nil {
			store = s
		}
	case config.StoreMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store engine %q", cfg.Engine)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Engine, err)
	}

	log.Debug("store opened", "engine", cfg.Engine)
	return store, nil
}


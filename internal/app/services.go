// Package app собирает доменные сервисы из конфигурации. CLI и HTTP-сервер
// стартуют с Build.
package app

import (
	"context"
	"fmt"
	"os"

	"ciao/internal/config"
	"ciao/internal/domain/archive"
	"ciao/internal/domain/export"
	"ciao/internal/domain/profile"
	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"
	"ciao/internal/infrastructure/files"
	"ciao/internal/infrastructure/share"
	"ciao/internal/infrastructure/storage"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

type Services struct {
	Config  *config.Config
	Catalog *i18n.Catalog
	Layout  files.Layout

	Visitors *visitor.Service
	Exports  *export.Service
	Archives *archive.Service
	Profile  *profile.Service

	store storage.Store
	log   *slog.Logger
}

// Build открывает хранилище и собирает поверх него все сервисы.
// Вызывающий обязан вызвать Close.
func Build(ctx context.Context, cfg *config.Config, fs afero.Fs, log *slog.Logger) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	policy, err := visitor.ParseMatchPolicy(cfg.CheckoutMatch)
	if err != nil {
		return nil, err
	}

	if err := fs.MkdirAll(cfg.Files.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if err := fs.MkdirAll(cfg.Files.CacheDir, 0o700); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	store, err := storage.NewByEngine(ctx, cfg.Storage, fs, log)
	if err != nil {
		return nil, err
	}

	catalog := i18n.New(loc, cfg.Locale.Tag)
	layout := files.NewLayout(fs, cfg.Files.CacheDir, cfg.Files.DataDir)

	visits := storage.NewVisitorRepository(store, log)
	flags := storage.NewFlagRepository(store)

	visitors := visitor.NewService(visits, flags, log, visitor.WithMatchPolicy(policy))
	formatter := export.NewFormatter(catalog, export.Schema(cfg.Export.Schema))
	exports := export.NewService(visits, flags, layout, formatter, cfg.Export.AppPrefix, loc, log)

	log.Debug("services ready",
		slog.String("engine", cfg.Storage.Engine),
		slog.String("locale", catalog.Tag().String()),
		slog.String("data_dir", cfg.Files.DataDir),
	)

	return &Services{
		Config:   cfg,
		Catalog:  catalog,
		Layout:   layout,
		Visitors: visitors,
		Exports:  exports,
		Archives: archive.NewService(exports, visitors, flags, layout, log),
		Profile:  profile.NewService(storage.NewProfileRepository(store), log),
		store:    store,
		log:      log,
	}, nil
}

// Sharer возвращает получателя выгрузки по share_target.
func (s *Services) Sharer() (export.Sharer, error) {
	cfg := s.Config.Share
	switch cfg.Target {
	case config.ShareDir:
		return share.NewDirSharer(s.Layout.Fs, cfg.Dir, s.log), nil
	case config.ShareS3:
		s3, err := share.NewS3Sharer(cfg.S3, s.log)
		if err != nil {
			return nil, err
		}
		return s3, nil
	case config.ShareStdout:
		return share.NewWriterSharer(os.Stdout), nil
	}
	return nil, fmt.Errorf("unknown share target %q", cfg.Target)
}

func (s *Services) Close() error {
	return s.store.Close()
}

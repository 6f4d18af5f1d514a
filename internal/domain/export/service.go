package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"ciao/internal/domain/visitor"
	"ciao/internal/infrastructure/files"
	"ciao/internal/infrastructure/share"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

const csvExt = ".csv"

// Sharer передает готовый документ адресату и сообщает, куда он попал.
type Sharer interface {
	Share(ctx context.Context, doc share.Document) (string, error)
}

// Loader читает текущий список посетителей.
type Loader interface {
	Load(ctx context.Context) ([]visitor.Record, error)
}

// FlagStore - сохраняемый признак "список экспортирован".
type FlagStore interface {
	Exported(ctx context.Context) (bool, error)
	MarkExported(ctx context.Context) error
	ClearExported(ctx context.Context) error
}

// Result описывает завершенную выгрузку.
type Result struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type Servicer interface {
	Export(ctx context.Context, sharer Sharer) (Result, error)
	WriteTo(ctx context.Context, fs afero.Fs, dir string) (string, int, error)
}

type Service struct {
	records   Loader
	flags     FlagStore
	layout    files.Layout
	formatter *Formatter
	appPrefix string
	now       func() time.Time
	loc       *time.Location
	log       *slog.Logger
}

func NewService(
	records Loader,
	flags FlagStore,
	layout files.Layout,
	formatter *Formatter,
	appPrefix string,
	loc *time.Location,
	log *slog.Logger,
	opts ...Option,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	s := &Service{
		records:   records,
		flags:     flags,
		layout:    layout,
		formatter: formatter,
		appPrefix: appPrefix,
		now:       time.Now,
		loc:       loc,
		log:       log.With("component", "export_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Option func(*Service)

// WithClock подменяет time.Now для имен файлов.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Export пишет список в кэш, передает файл sharer, удаляет временный файл
// и, если передача удалась, помечает список как экспортированный.
func (s *Service) Export(ctx context.Context, sharer Sharer) (Result, error) {
	path, count, err := s.WriteTo(ctx, s.layout.Fs, s.layout.CacheDir)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if rmErr := s.layout.Fs.Remove(path); rmErr != nil {
			s.log.Warn("temporary export not removed", "path", path, "error", rmErr)
		}
	}()

	f, err := s.layout.Fs.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	size := int64(-1)
	if fi, statErr := f.Stat(); statErr == nil {
		size = fi.Size()
	}

	name := filepath.Base(path)
	location, err := sharer.Share(ctx, share.Document{Name: name, Size: size, Body: f})
	if err != nil {
		return Result{}, fmt.Errorf("share export: %w", err)
	}

	if err := s.flags.MarkExported(ctx); err != nil {
		return Result{}, fmt.Errorf("mark exported: %w", err)
	}

	s.log.Info("visitor list exported", "name", name, "location", location, "count", count)
	return Result{Name: name, Location: location, Count: count}, nil
}

// WriteTo пишет текущий список в dir под свободным именем и возвращает
// путь и число записей.
func (s *Service) WriteTo(ctx context.Context, fs afero.Fs, dir string) (string, int, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("export: %w", err)
	}

	path, err := s.WriteRecords(fs, dir, records)
	if err != nil {
		return "", 0, err
	}
	return path, len(records), nil
}

// WriteRecords пишет records в dir под свободным именем.
func (s *Service) WriteRecords(fs afero.Fs, dir string, records []visitor.Record) (string, error) {
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path, err := files.UniqueName(fs, dir, BaseName(s.appPrefix, s.now().In(s.loc)), csvExt)
	if err != nil {
		return "", err
	}

	if err := afero.WriteFile(fs, path, []byte(s.formatter.Encode(records)), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"ciao/internal/domain/export"
	"ciao/internal/domain/visitor"
	"ciao/internal/infrastructure/files"
	"ciao/internal/infrastructure/share"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

// File - один архивный файл.
type File struct {
	Name     string    `json:"name"`
	Path     string    `json:"-"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Confirmer спрашивает оператора, архивировать ли неэкспортированный список.
type Confirmer interface {
	Confirm(ctx context.Context) (bool, error)
}

// ConfirmFunc превращает функцию в Confirmer.
type ConfirmFunc func(ctx context.Context) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context) (bool, error) {
	return f(ctx)
}

// Writer пишет CSV для переданного снимка списка в каталог.
type Writer interface {
	WriteRecords(fs afero.Fs, dir string, records []visitor.Record) (string, error)
}

// Drainer отдает снимок списка и очищает его под одной блокировкой.
type Drainer interface {
	Drain(ctx context.Context, fn func([]visitor.Record) error) error
}

type Servicer interface {
	Archive(ctx context.Context, confirmer Confirmer) (File, error)
	List(ctx context.Context) ([]File, error)
	Share(ctx context.Context, name string, sharer export.Sharer) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, File, error)
	Delete(ctx context.Context, name string) error
}

type Service struct {
	writer Writer
	visits Drainer
	flags  export.FlagStore
	layout files.Layout
	log    *slog.Logger
}

func NewService(writer Writer, visits Drainer, flags export.FlagStore, layout files.Layout, log *slog.Logger) *Service {
	return &Service{
		writer: writer,
		visits: visits,
		flags:  flags,
		layout: layout,
		log:    log.With("component", "archive_service"),
	}
}

// Archive переносит текущий список в архив. Если список не экспортирован,
// решает confirmer; отказ ничего не меняет.
func (s *Service) Archive(ctx context.Context, confirmer Confirmer) (File, error) {
	exported, err := s.flags.Exported(ctx)
	if err != nil {
		return File{}, err
	}

	if !exported {
		if confirmer == nil {
			return File{}, ErrConfirmationRequired
		}
		ok, err := confirmer.Confirm(ctx)
		if err != nil {
			return File{}, fmt.Errorf("confirm archive: %w", err)
		}
		if !ok {
			s.log.Debug("archive cancelled by operator")
			return File{}, ErrCancelled
		}
	}

	var (
		path  string
		count int
	)
	dir := s.layout.ArchiveDir()
	err = s.visits.Drain(ctx, func(records []visitor.Record) error {
		p, err := s.writer.WriteRecords(s.layout.Fs, dir, records)
		if err != nil {
			return err
		}
		path, count = p, len(records)
		return nil
	})
	if err != nil {
		return File{}, fmt.Errorf("archive: %w", err)
	}

	if err := s.flags.ClearExported(ctx); err != nil {
		return File{}, fmt.Errorf("archive: clear exported flag: %w", err)
	}

	fi, err := s.layout.Fs.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("stat archive: %w", err)
	}

	s.log.Info("visitor list archived", "path", path, "count", count)
	return fileOf(path, fi), nil
}

// List возвращает архивные файлы, сначала свежие.
func (s *Service) List(_ context.Context) ([]File, error) {
	dir := s.layout.ArchiveDir()
	infos, err := files.ListFiles(s.layout.Fs, dir)
	if err != nil {
		return nil, err
	}
	out := make([]File, 0, len(infos))
	for _, fi := range infos {
		out = append(out, fileOf(filepath.Join(dir, fi.Name()), fi))
	}
	return out, nil
}

// Share передает архивный файл sharer, не меняя состояния.
func (s *Service) Share(ctx context.Context, name string, sharer export.Sharer) (string, error) {
	rc, f, err := s.Open(ctx, name)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	location, err := sharer.Share(ctx, share.Document{Name: f.Name, Size: f.Size, Body: rc})
	if err != nil {
		return "", fmt.Errorf("share archive %s: %w", name, err)
	}
	return location, nil
}

func (s *Service) Open(_ context.Context, name string) (io.ReadCloser, File, error) {
	path, err := files.SafeJoin(s.layout.ArchiveDir(), name)
	if err != nil {
		return nil, File{}, err
	}

	fi, err := s.layout.Fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && fi.IsDir()) {
		return nil, File{}, ErrNotFound
	}
	if err != nil {
		return nil, File{}, fmt.Errorf("stat %s: %w", name, err)
	}

	f, err := s.layout.Fs.Open(path)
	if err != nil {
		return nil, File{}, fmt.Errorf("open %s: %w", name, err)
	}
	return f, fileOf(path, fi), nil
}

func (s *Service) Delete(_ context.Context, name string) error {
	path, err := files.SafeJoin(s.layout.ArchiveDir(), name)
	if err != nil {
		return err
	}

	fi, err := s.layout.Fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && fi.IsDir()) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	if err := s.layout.Fs.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	s.log.Info("archive deleted", "name", name)
	return nil
}

func fileOf(path string, fi os.FileInfo) File {
	return File{
		Name:     fi.Name(),
		Path:     path,
		Size:     fi.Size(),
		Modified: fi.ModTime(),
	}
}

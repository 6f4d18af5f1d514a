// Package share передает готовые CSV-документы адресату.
package share

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ciao/internal/infrastructure/files"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

const ContentTypeCSV = "text/csv; charset=utf-8"

// Document - файл для передачи. Size равен -1, если размер неизвестен.
type Document struct {
	Name string
	Size int64
	Body io.Reader
}

// DirSharer кладет документы в каталог и никогда не перезаписывает существующий файл.
type DirSharer struct {
	fs  afero.Fs
	dir string
	log *slog.Logger
}

func NewDirSharer(fs afero.Fs, dir string, log *slog.Logger) *DirSharer {
	return &DirSharer{fs: fs, dir: dir, log: log.With("component", "dir_sharer")}
}

func (s *DirSharer) Share(_ context.Context, doc Document) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create share dir: %w", err)
	}

	ext := filepath.Ext(doc.Name)
	target, err := files.UniqueName(s.fs, s.dir, strings.TrimSuffix(doc.Name, ext), ext)
	if err != nil {
		return "", err
	}

	f, err := s.fs.Create(target)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(f, doc.Body); err != nil {
		f.Close()
		_ = s.fs.Remove(target)
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", target, err)
	}

	s.log.Info("document shared", "path", target)
	return target, nil
}

// WriterSharer пишет документ в writer, например в stdout или тело HTTP-ответа.
type WriterSharer struct {
	w io.Writer
}

func NewWriterSharer(w io.Writer) *WriterSharer {
	return &WriterSharer{w: w}
}

func (s *WriterSharer) Share(_ context.Context, doc Document) (string, error) {
	if _, err := io.Copy(s.w, doc.Body); err != nil {
		return "", fmt.Errorf("stream %s: %w", doc.Name, err)
	}
	return doc.Name, nil
}

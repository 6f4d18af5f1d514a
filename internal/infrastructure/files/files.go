// Package files описывает две файловые зоны приложения: временный кэш
// и постоянный каталог документов с архивом.
package files

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const archiveDirName = "archive"

var ErrInvalidName = errors.New("invalid file name")

type Layout struct {
	Fs           afero.Fs
	CacheDir     string
	DocumentsDir string
}

func NewLayout(fs afero.Fs, cacheDir, documentsDir string) Layout {
	return Layout{Fs: fs, CacheDir: cacheDir, DocumentsDir: documentsDir}
}

func (l Layout) ArchiveDir() string {
	return filepath.Join(l.DocumentsDir, archiveDirName)
}

// UniqueName возвращает dir/base+ext или dir/base-n+ext с наименьшим n >= 1,
// которого еще нет.
func UniqueName(fs afero.Fs, dir, base, ext string) (string, error) {
	candidate := filepath.Join(dir, base+ext)
	for n := 1; ; n++ {
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, n, ext))
	}
}

// ListFiles возвращает обычные файлы каталога, сначала самые свежие.
// Отсутствующий каталог считается пустым.
func ListFiles(fs afero.Fs, dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(fs, dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	out := make([]os.FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return modMillis(out[i]) > modMillis(out[j])
	})
	return out, nil
}

// SafeJoin склеивает dir и имя файла, отклоняя все, что выходит за пределы dir.
func SafeJoin(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || path.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(dir, name), nil
}

// modMillis: нет времени изменения - значит 0.
func modMillis(fi os.FileInfo) int64 {
	t := fi.ModTime()
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

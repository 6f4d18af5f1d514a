package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ciao/internal/app"
	"ciao/internal/config"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

// App - состояние CLI-процесса: конфигурация, логгер и доменные сервисы.
type App struct {
	*app.Services

	// JSON переключает вывод команд в JSON.
	JSON bool

	log *slog.Logger
	in  io.Reader
	out io.Writer
	tty func() bool
}

type contextKey struct{}

var ErrNotInitialized = errors.New("приложение не инициализировано")

// WithApp кладет a в ctx для подкоманд.
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext возвращает App, сохраненный WithApp.
func FromContext(ctx context.Context) (*App, error) {
	a, ok := ctx.Value(contextKey{}).(*App)
	if !ok || a == nil {
		return nil, ErrNotInitialized
	}
	return a, nil
}

// New создает приложение поверх файловой системы ОС.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	return NewWithFs(ctx, cfg, afero.NewOsFs(), log)
}

func NewWithFs(ctx context.Context, cfg *config.Config, fs afero.Fs, log *slog.Logger) (*App, error) {
	svc, err := app.Build(ctx, cfg, fs, log)
	if err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}
	return &App{
		Services: svc,
		log:      log.With("component", "client"),
		in:       os.Stdin,
		out:      os.Stdout,
		tty:      stdinIsTerminal,
	}, nil
}

// SetIO перенаправляет ввод-вывод, в основном для тестов.
func (a *App) SetIO(in io.Reader, out io.Writer, tty bool) {
	a.in = in
	a.out = out
	a.tty = func() bool { return tty }
}

func (a *App) Out() io.Writer {
	return a.out
}

func (a *App) In() io.Reader {
	return a.in
}

package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Auth сверяет bearer-токен с bcrypt-хешем. С пустым хешем API открыт:
// так по умолчанию работает станция на localhost.
type Auth struct {
	hash    []byte
	message string
	log     *slog.Logger
}

func New(hash string, message string, log *slog.Logger) *Auth {
	if message == "" {
		message = "Unauthorized"
	}
	return &Auth{
		hash:    []byte(strings.TrimSpace(hash)),
		message: message,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

// Enabled сообщает, нужен ли запросам токен.
func (a *Auth) Enabled() bool {
	return len(a.hash) > 0
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.Enabled() {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		token, ok := bearer(header)
		if !ok {
			a.log.Warn("missing bearer token", slog.String("path", ctx.URL().Path))
			a.unauthorized(ctx)
			return
		}

		if err := bcrypt.CompareHashAndPassword(a.hash, []byte(token)); err != nil {
			a.log.Warn("invalid api token", slog.String("path", ctx.URL().Path))
			a.unauthorized(ctx)
			return
		}

		next(ctx)
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetHeader("Content-Type", "application/problem+json")
	ctx.SetHeader("WWW-Authenticate", `Bearer realm="ciao"`)
	ctx.SetStatus(http.StatusUnauthorized)

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]any{
		"title":  http.StatusText(http.StatusUnauthorized),
		"status": http.StatusUnauthorized,
		"detail": a.message,
	})
	if err != nil {
		a.log.Error("encode unauthorized response", "error", err)
	}
}

func bearer(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// Package apierr превращает доменные ошибки в problem-ответы huma
// с локализованным текстом.
package apierr

import (
	"errors"

	"ciao/internal/domain/archive"
	"ciao/internal/domain/profile"
	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Translator interface {
	T(key string) string
}

// From сопоставляет err с HTTP-статусом. Неизвестные ошибки логируются
// и отдаются как 500 без исходного текста.
func From(err error, t Translator, log *slog.Logger) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, visitor.ErrInvalidFormat):
		return huma.Error422UnprocessableEntity(t.T(i18n.InvalidFormat), err)
	case errors.Is(err, visitor.ErrIncompleteData):
		return huma.Error422UnprocessableEntity(t.T(i18n.DataIncompleteInvalid), err)
	case errors.Is(err, visitor.ErrNoMatchingCheckIn):
		return huma.Error404NotFound(t.T(i18n.NoMatchingCheckIn))
	case errors.Is(err, visitor.ErrIndexOutOfRange):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, archive.ErrConfirmationRequired):
		return huma.Error409Conflict(t.T(i18n.ArchiveConfirm))
	case errors.Is(err, archive.ErrInvalidName):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, archive.ErrNotFound):
		return huma.Error404NotFound(t.T(i18n.NoArchivedEntriesYet))
	case errors.Is(err, profile.ErrNotFound):
		return huma.Error404NotFound(t.T(i18n.NoAddressStored))
	case errors.Is(err, profile.ErrInvalidProfile):
		return huma.Error422UnprocessableEntity(err.Error())
	}

	if log != nil {
		log.Error("request failed", "error", err)
	}
	return huma.Error500InternalServerError(t.T(i18n.Error))
}

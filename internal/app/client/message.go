package client

import (
	"errors"

	"ciao/internal/domain/archive"
	"ciao/internal/domain/profile"
	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"
)

// Message возвращает текст ошибки для оператора; известные доменные
// ошибки локализуются.
func (a *App) Message(err error) string {
	key := ""
	switch {
	case errors.Is(err, visitor.ErrInvalidFormat):
		key = i18n.InvalidFormat
	case errors.Is(err, visitor.ErrIncompleteData):
		key = i18n.DataIncompleteInvalid
	case errors.Is(err, visitor.ErrNoMatchingCheckIn):
		key = i18n.NoMatchingCheckIn
	case errors.Is(err, archive.ErrCancelled):
		key = i18n.Cancelled
	case errors.Is(err, profile.ErrNotFound):
		key = i18n.NoAddressStored
	}
	if key == "" {
		return err.Error()
	}
	return a.Catalog.T(key)
}

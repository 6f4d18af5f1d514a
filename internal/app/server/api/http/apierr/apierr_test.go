package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ciao/internal/domain/archive"
	"ciao/internal/domain/profile"
	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestFrom(t *testing.T) {
	catalog := i18n.New(time.UTC, "de")

	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{name: "invalid format", err: visitor.ErrInvalidFormat, status: http.StatusUnprocessableEntity, detail: catalog.T(i18n.InvalidFormat)},
		{name: "incomplete wrapped", err: &visitor.FieldError{Field: "city", Err: visitor.ErrIncompleteData}, status: http.StatusUnprocessableEntity, detail: catalog.T(i18n.DataIncompleteInvalid)},
		{name: "no match", err: visitor.ErrNoMatchingCheckIn, status: http.StatusNotFound, detail: catalog.T(i18n.NoMatchingCheckIn)},
		{name: "index", err: fmt.Errorf("delete visitor 9: %w", visitor.ErrIndexOutOfRange), status: http.StatusNotFound},
		{name: "confirmation", err: archive.ErrConfirmationRequired, status: http.StatusConflict, detail: catalog.T(i18n.ArchiveConfirm)},
		{name: "bad name", err: archive.ErrInvalidName, status: http.StatusBadRequest},
		{name: "archive missing", err: archive.ErrNotFound, status: http.StatusNotFound},
		{name: "profile missing", err: profile.ErrNotFound, status: http.StatusNotFound, detail: catalog.T(i18n.NoAddressStored)},
		{name: "profile invalid", err: profile.ErrInvalidProfile, status: http.StatusUnprocessableEntity},
		{name: "unknown", err: errors.New("disk full"), status: http.StatusInternalServerError, detail: catalog.T(i18n.Error)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err, catalog, slog.Default())

			var se huma.StatusError
			require.ErrorAs(t, got, &se)
			assert.Equal(t, tt.status, se.GetStatus())
			if tt.detail != "" {
				assert.Contains(t, got.Error(), tt.detail)
			}
		})
	}
}

func TestFrom_Nil(t *testing.T) {
	assert.NoError(t, From(nil, i18n.New(time.UTC), nil))
}

package scan

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CheckIn(ctx context.Context, raw string) (visitor.Record, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(visitor.Record), args.Error(1)
}

func (m *MockService) CheckOut(ctx context.Context, raw string) (visitor.Record, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(visitor.Record), args.Error(1)
}

func (m *MockService) List(ctx context.Context, filter visitor.Filter) ([]visitor.Entry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]visitor.Entry), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, index int, rec visitor.Record) error {
	return m.Called(ctx, index, rec).Error(0)
}

func (m *MockService) Delete(ctx context.Context, index int) (visitor.Record, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(visitor.Record), args.Error(1)
}

func (m *MockService) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var anna = visitor.Record{
	FirstName:   "Anna",
	LastName:    "Muster",
	Street:      "Hauptstrasse 1",
	PostalCode:  "8000",
	City:        "Zürich",
	PhoneNumber: "0791234567",
	Timestamp:   1593763200000,
}

func TestHandler_checkIn(t *testing.T) {
	catalog := i18n.New(time.UTC, "en")

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, catalog, slog.Default(), nil)
		svc.On("CheckIn", mock.Anything, "payload").Return(anna, nil).Once()

		input := &scanInput{}
		input.Body.Data = "payload"
		out, err := h.checkIn(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, anna, out.Body.Record)
		assert.Equal(t, catalog.T(i18n.Success), out.Body.Title)
		assert.Contains(t, out.Body.Message, "Anna Muster, Hauptstrasse 1 8000 Zürich")
		svc.AssertExpectations(t)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, catalog, slog.Default(), nil)
		svc.On("CheckIn", mock.Anything, "oops").Return(visitor.Record{}, visitor.ErrInvalidFormat).Once()

		input := &scanInput{}
		input.Body.Data = "oops"
		out, err := h.checkIn(context.Background(), input)

		assert.Nil(t, out)
		var se huma.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusUnprocessableEntity, se.GetStatus())
	})
}

func TestHandler_Routes(t *testing.T) {
	svc := new(MockService)
	closed := anna
	out := anna.Timestamp + 60_000
	closed.Checkout = &out
	svc.On("CheckIn", mock.Anything, "in").Return(anna, nil)
	svc.On("CheckOut", mock.Anything, "out").Return(closed, nil)
	svc.On("CheckOut", mock.Anything, "stranger").Return(visitor.Record{}, visitor.ErrNoMatchingCheckIn)

	_, api := humatest.New(t)
	NewHandler(svc, i18n.New(time.UTC, "de"), slog.Default(), nil).SetupRoutes(api)

	resp := api.Post("/api/v1/checkins", map[string]any{"data": "in"})
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"firstName":"Anna"`)

	resp = api.Post("/api/v1/checkouts", map[string]any{"data": "out"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"checkout":1593763260000`)

	resp = api.Post("/api/v1/checkouts", map[string]any{"data": "stranger"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Post("/api/v1/checkins", map[string]any{"data": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

package scan

import (
	"context"

	"ciao/internal/app/server/api/http/apierr"
	"ciao/internal/domain/visitor"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    visitor.Servicer
	catalog    visitor.Translator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service visitor.Servicer, catalog visitor.Translator, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		catalog:    catalog,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.checkInOp(), h.checkIn)
	huma.Register(api, h.checkOutOp(), h.checkOut)
}

func (h *Handler) checkIn(ctx context.Context, input *scanInput) (*scanOutput, error) {
	rec, err := h.service.CheckIn(ctx, input.Body.Data)
	return h.respond(visitor.Result{Mode: visitor.ModeCheckIn, Record: rec, Err: err})
}

func (h *Handler) checkOut(ctx context.Context, input *scanInput) (*scanOutput, error) {
	rec, err := h.service.CheckOut(ctx, input.Body.Data)
	return h.respond(visitor.Result{Mode: visitor.ModeCheckOut, Record: rec, Err: err})
}

func (h *Handler) respond(res visitor.Result) (*scanOutput, error) {
	if res.Err != nil {
		return nil, apierr.From(res.Err, h.catalog, h.log)
	}
	title, body := res.Alert(h.catalog)
	return &scanOutput{
		Body: scanResponse{
			Title:   title,
			Message: body,
			Record:  res.Record,
		},
	}, nil
}

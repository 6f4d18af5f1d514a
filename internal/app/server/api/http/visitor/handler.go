package visitor

import (
	"context"
	"time"

	"ciao/internal/app/server/api/http/apierr"
	"ciao/internal/domain/visitor"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const dayLayout = "2006-01-02"

type Handler struct {
	service    visitor.Servicer
	catalog    apierr.Translator
	loc        *time.Location
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service visitor.Servicer, catalog apierr.Translator, loc *time.Location, log *slog.Logger, mws huma.Middlewares) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		service:    service,
		catalog:    catalog,
		loc:        loc,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.clearOp(), h.clear)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	filter := visitor.Filter{OpenOnly: input.Open, Query: input.Q}
	if input.Day != "" {
		day, err := time.ParseInLocation(dayLayout, input.Day, h.loc)
		if err != nil {
			return nil, huma.Error400BadRequest("day must be YYYY-MM-DD", err)
		}
		filter.Day = &day
	}

	entries, err := h.service.List(ctx, filter)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}

	return &listOutput{
		Body: listResponse{Count: len(entries), Entries: entries},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*entryOutput, error) {
	rec := input.Body.record()
	if err := h.service.Update(ctx, input.Index, rec); err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &entryOutput{Body: visitor.Entry{Index: input.Index, Record: rec}}, nil
}

func (h *Handler) delete(ctx context.Context, input *indexInput) (*entryOutput, error) {
	rec, err := h.service.Delete(ctx, input.Index)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &entryOutput{Body: visitor.Entry{Index: input.Index, Record: rec}}, nil
}

func (h *Handler) clear(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := h.service.Clear(ctx); err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return nil, nil
}

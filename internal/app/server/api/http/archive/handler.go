package archive

import (
	"context"
	"fmt"
	"io"

	"ciao/internal/app/server/api/http/apierr"
	exportAPI "ciao/internal/app/server/api/http/export"
	"ciao/internal/domain/archive"
	"ciao/internal/infrastructure/share"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    archive.Servicer
	catalog    apierr.Translator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service archive.Servicer, catalog apierr.Translator, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		catalog:    catalog,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.downloadOp(), h.download)
	huma.Register(api, h.deleteOp(), h.delete)
}

// create ничего не спрашивает: флаг в query - единственное подтверждение от HTTP-клиента.
func (h *Handler) create(ctx context.Context, input *createInput) (*fileOutput, error) {
	var confirmer archive.Confirmer
	if input.Confirm {
		confirmer = archive.ConfirmFunc(func(context.Context) (bool, error) { return true, nil })
	}

	f, err := h.service.Archive(ctx, confirmer)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &fileOutput{Body: f}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	list, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &listOutput{Body: listResponse{Count: len(list), Files: list}}, nil
}

func (h *Handler) download(ctx context.Context, input *nameInput) (*downloadOutput, error) {
	rc, f, err := h.service.Open(ctx, input.Name)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, apierr.From(fmt.Errorf("read archive %s: %w", input.Name, err), h.catalog, h.log)
	}

	return &downloadOutput{
		ContentType:        share.ContentTypeCSV,
		ContentDisposition: exportAPI.Attachment(f.Name),
		Body:               body,
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *nameInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.Name); err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return nil, nil
}

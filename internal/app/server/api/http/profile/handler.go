package profile

import (
	"context"

	"ciao/internal/app/server/api/http/apierr"
	"ciao/internal/domain/profile"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const contentTypePNG = "image/png"

type Handler struct {
	service    profile.Servicer
	linkURL    string
	catalog    apierr.Translator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service profile.Servicer, linkURL string, catalog apierr.Translator, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		linkURL:    linkURL,
		catalog:    catalog,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.qrOp(), h.qr)
	huma.Register(api, h.linkQROp(), h.linkQR)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	p, err := h.service.Get(ctx)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &profileOutput{Body: p}, nil
}

func (h *Handler) save(ctx context.Context, input *saveInput) (*profileOutput, error) {
	if err := h.service.Save(ctx, input.Body); err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &profileOutput{Body: input.Body}, nil
}

func (h *Handler) delete(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := h.service.Delete(ctx); err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return nil, nil
}

func (h *Handler) qr(ctx context.Context, input *qrInput) (*pngOutput, error) {
	png, err := h.service.QRCode(ctx, input.Size)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &pngOutput{ContentType: contentTypePNG, Body: png}, nil
}

func (h *Handler) linkQR(_ context.Context, input *qrInput) (*pngOutput, error) {
	png, err := profile.QRPNG(h.linkURL, input.Size)
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}
	return &pngOutput{ContentType: contentTypePNG, Body: png}, nil
}

package export

import (
	"bytes"
	"context"
	"mime"
	"strconv"

	"ciao/internal/app/server/api/http/apierr"
	"ciao/internal/domain/export"
	"ciao/internal/infrastructure/share"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    export.Servicer
	catalog    apierr.Translator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service export.Servicer, catalog apierr.Translator, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		catalog:    catalog,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.exportOp(), h.export)
}

// export отдает документ в тело ответа.
func (h *Handler) export(ctx context.Context, _ *struct{}) (*fileOutput, error) {
	var buf bytes.Buffer
	res, err := h.service.Export(ctx, share.NewWriterSharer(&buf))
	if err != nil {
		return nil, apierr.From(err, h.catalog, h.log)
	}

	return &fileOutput{
		ContentType:        share.ContentTypeCSV,
		ContentDisposition: Attachment(res.Name),
		Count:              strconv.Itoa(res.Count),
		Body:               buf.Bytes(),
	}, nil
}

// Attachment формирует заголовок Content-Disposition для скачивания.
func Attachment(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}

package archive

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "archives-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/archives",
		Summary:       "Archive the visitor list",
		Description:   "Writes the list into the archive directory and clears it. Fails with 409 when the list was never exported unless confirm=true.",
		Tags:          []string{"archives"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "archives-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/archives",
		Summary:     "List archived exports, newest first",
		Tags:        []string{"archives"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) downloadOp() huma.Operation {
	return huma.Operation{
		OperationID: "archives-download",
		Method:      http.MethodGet,
		Path:        "/api/v1/archives/{name}",
		Summary:     "Download an archived export",
		Tags:        []string{"archives"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
		Responses: map[string]*huma.Response{
			"200": {
				Description: "CSV document",
				Content:     map[string]*huma.MediaType{"text/csv": {}},
			},
		},
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "archives-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/archives/{name}",
		Summary:     "Delete an archived export",
		Tags:        []string{"archives"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

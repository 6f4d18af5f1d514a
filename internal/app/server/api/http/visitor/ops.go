package visitor

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "visitors-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/visitors",
		Summary:     "List visitors, newest first",
		Tags:        []string{"visitors"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "visitors-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/visitors/{index}",
		Summary:     "Replace a visitor record",
		Tags:        []string{"visitors"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "visitors-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/visitors/{index}",
		Summary:     "Delete a visitor record",
		Tags:        []string{"visitors"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID: "visitors-clear",
		Method:      http.MethodDelete,
		Path:        "/api/v1/visitors",
		Summary:     "Delete all visitor records",
		Description: "Empties the list and resets the exported flag.",
		Tags:        []string{"visitors"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

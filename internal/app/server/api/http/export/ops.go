package export

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "exports-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/exports",
		Summary:     "Export the visitor list as CSV",
		Description: "Returns the current list as a CSV attachment and marks it as exported.",
		Tags:        []string{"exports"},
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

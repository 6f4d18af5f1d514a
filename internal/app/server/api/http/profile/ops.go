package profile

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var pngResponses = map[string]*huma.Response{
	"200": {
		Description: "QR code",
		Content:     map[string]*huma.MediaType{"image/png": {}},
	},
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Show the operator profile",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) saveOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-save",
		Method:      http.MethodPut,
		Path:        "/api/v1/profile",
		Summary:     "Store the operator profile",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/profile",
		Summary:     "Delete the operator profile",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) qrOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-qr",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile/qr",
		Summary:     "Operator profile as QR code",
		Description: "PNG encoding the stored profile JSON, scannable by another station.",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
		Responses:   pngResponses,
	}
}

func (h *Handler) linkQROp() huma.Operation {
	return huma.Operation{
		OperationID: "link-qr",
		Method:      http.MethodGet,
		Path:        "/api/v1/link/qr",
		Summary:     "QR code pointing visitors to the payload form",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
		Responses:   pngResponses,
	}
}

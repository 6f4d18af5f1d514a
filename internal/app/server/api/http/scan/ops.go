package scan

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) checkInOp() huma.Operation {
	return huma.Operation{
		OperationID:   "checkin-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/checkins",
		Summary:       "Check a visitor in",
		Description:   "Parses a scanned visitor payload and appends a new open record.",
		Tags:          []string{"scan"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) checkOutOp() huma.Operation {
	return huma.Operation{
		OperationID: "checkout-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/checkouts",
		Summary:     "Check a visitor out",
		Description: "Closes the newest matching record for the scanned phone number.",
		Tags:        []string{"scan"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

package scan

import "ciao/internal/domain/visitor"

type scanInput struct {
	Body scanRequest
}

type scanRequest struct {
	Data string `json:"data" doc:"Raw QR code content as read by the scanner" minLength:"1"`
}

type scanOutput struct {
	Body scanResponse
}

type scanResponse struct {
	Title   string         `json:"title" doc:"Localized alert title"`
	Message string         `json:"message" doc:"Localized alert text"`
	Record  visitor.Record `json:"record"`
}

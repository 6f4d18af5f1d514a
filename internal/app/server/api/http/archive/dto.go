package archive

import "ciao/internal/domain/archive"

type createInput struct {
	Confirm bool `query:"confirm" doc:"Archive even when the list was never exported"`
}

type fileOutput struct {
	Body archive.File
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Count int            `json:"count"`
	Files []archive.File `json:"files"`
}

type nameInput struct {
	Name string `path:"name" doc:"Archive file name as returned by the list"`
}

type downloadOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

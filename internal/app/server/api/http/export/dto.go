package export

type fileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Count              string `header:"X-Record-Count" doc:"Number of exported visitor records"`
	Body               []byte
}

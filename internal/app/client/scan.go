package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ciao/internal/domain/visitor"
)

// ScanSummary - итог цикла сканирования.
type ScanSummary struct {
	Accepted int `json:"accepted"`
	Failed   int `json:"failed"`
	Dropped  int `json:"dropped"`
}

type scanEvent struct {
	Mode    string          `json:"mode"`
	OK      bool            `json:"ok"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Record  *visitor.Record `json:"record,omitempty"`
}

// Scan передает каждую строку ввода станции в заданном режиме и печатает
// сообщение для каждого принятого скана. Напечатанное сообщение считается
// подтвержденным. Пустые строки пропускаются. Scan завершается с концом ввода
// или отменой ctx.
func (a *App) Scan(ctx context.Context, mode visitor.Mode, asJSON bool) (ScanSummary, error) {
	station := visitor.NewStation(a.Visitors, mode)
	lines := bufio.NewScanner(a.in)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var sum ScanSummary
	enc := json.NewEncoder(a.out)

	for lines.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		raw := strings.TrimSpace(lines.Text())
		if raw == "" {
			continue
		}

		res, ok := station.Handle(ctx, raw)
		if !ok {
			sum.Dropped++
			a.log.Debug("scan dropped, station busy")
			continue
		}

		title, body := res.Alert(a.Catalog)
		if res.Err != nil {
			sum.Failed++
			a.log.Info("scan rejected", "mode", mode.String(), "error", res.Err)
		} else {
			sum.Accepted++
		}

		if asJSON {
			ev := scanEvent{Mode: mode.String(), OK: res.Err == nil, Title: title, Message: body}
			if res.Err == nil {
				rec := res.Record
				ev.Record = &rec
			}
			if err := enc.Encode(ev); err != nil {
				return sum, err
			}
		} else {
			fmt.Fprintf(a.out, "%s\n%s\n\n", title, body)
		}

		station.Acknowledge()
	}

	if err := lines.Err(); err != nil {
		return sum, fmt.Errorf("read scans: %w", err)
	}
	return sum, nil
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ciao/internal/config"
	"ciao/internal/domain/archive"
	"ciao/internal/domain/profile"
	"ciao/internal/domain/visitor"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const anna = `{"firstName":"Anna","lastName":"Muster","street":"Hauptstrasse 1","postalCode":"8000","city":"Zürich","phoneNumber":"0791234567"}`

func newTestApp(t *testing.T, in string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		Env:           config.EnvLocal,
		CheckoutMatch: "open",
		Storage:       config.Storage{Engine: config.StoreMemory},
		Files:         config.Files{DataDir: "/data", CacheDir: "/cache"},
		Export:        config.Export{AppPrefix: "ciao-data", Schema: 2},
		Locale:        config.Locale{Tag: "en", Timezone: "UTC"},
		Share:         config.Share{Target: config.ShareStdout},
	}
	a, err := NewWithFs(context.Background(), cfg, afero.NewMemMapFs(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	out := new(bytes.Buffer)
	a.SetIO(strings.NewReader(in), out, true)
	return a, out
}

func TestScan_CheckInThenCheckOut(t *testing.T) {
	a, out := newTestApp(t, anna+"\n\nnot json\n")
	ctx := context.Background()

	sum, err := a.Scan(ctx, visitor.ModeCheckIn, false)
	require.NoError(t, err)
	assert.Equal(t, ScanSummary{Accepted: 1, Failed: 1}, sum)
	assert.Contains(t, out.String(), "Anna Muster, Hauptstrasse 1 8000 Zürich")
	assert.Contains(t, out.String(), "The scanned code has an invalid format.")

	a.SetIO(strings.NewReader(`{"phoneNumber":" 0791234567 "}`+"\n"), out, true)
	sum, err = a.Scan(ctx, visitor.ModeCheckOut, false)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Accepted)

	open, err := a.Visitors.List(ctx, visitor.Filter{OpenOnly: true})
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestScan_JSONEvents(t *testing.T) {
	a, out := newTestApp(t, anna+"\n")

	_, err := a.Scan(context.Background(), visitor.ModeCheckIn, true)
	require.NoError(t, err)

	var ev scanEvent
	require.NoError(t, json.Unmarshal(out.Bytes(), &ev))
	assert.True(t, ev.OK)
	assert.Equal(t, "checkin", ev.Mode)
	require.NotNil(t, ev.Record)
	assert.Equal(t, "Anna", ev.Record.FirstName)
}

func TestPrompt_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tty     bool
		yes     bool
		want    bool
		wantErr error
	}{
		{name: "yes flag", yes: true, want: true},
		{name: "no tty", tty: false, wantErr: archive.ErrConfirmationRequired},
		{name: "answer y", input: "y\n", tty: true, want: true},
		{name: "answer ja", input: "Ja\n", tty: true, want: true},
		{name: "answer n", input: "n\n", tty: true, want: false},
		{name: "empty answer", input: "\n", tty: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newTestApp(t, "")
			a.SetIO(strings.NewReader(tt.input), out, tt.tty)

			got, err := a.ArchiveConfirmer(tt.yes).Confirm(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompt_CancelledContext(t *testing.T) {
	a, out := newTestApp(t, "")
	a.SetIO(blockingReader{}, out, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.ArchiveConfirmer(false).Confirm(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestPrompt_DeleteWithoutTerminal(t *testing.T) {
	a, out := newTestApp(t, "")
	a.SetIO(strings.NewReader(""), out, false)

	_, err := a.Prompt("deleteEntries", false).Confirm(context.Background())
	assert.ErrorIs(t, err, ErrConfirmationRequired)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)

	a, _ := newTestApp(t, "")
	got, err := FromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestApp_Message(t *testing.T) {
	a, _ := newTestApp(t, "")

	assert.Equal(t, "No matching check-in found for this phone number.",
		a.Message(fmt.Errorf("check-out: %w", visitor.ErrNoMatchingCheckIn)))
	assert.Equal(t, "No address stored.", a.Message(profile.ErrNotFound))
	assert.Equal(t, "Cancelled.", a.Message(archive.ErrCancelled))
	assert.Equal(t, "boom", a.Message(errors.New("boom")))
}

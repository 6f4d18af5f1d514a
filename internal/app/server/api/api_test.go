package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ciao/internal/app"
	"ciao/internal/config"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

func newServices(t *testing.T, tokenHash string) *app.Services {
	t.Helper()
	cfg := &config.Config{
		Env:           config.EnvLocal,
		CheckoutMatch: "open",
		LinkURL:       "https://ciao.feuerschutz.ch",
		Storage:       config.Storage{Engine: config.StoreMemory},
		Files:         config.Files{DataDir: "/data", CacheDir: "/cache"},
		Export:        config.Export{AppPrefix: "ciao-data", Schema: 2},
		Locale:        config.Locale{Tag: "en", Timezone: "UTC"},
		Server:        config.Server{APITokenHash: tokenHash},
		Share:         config.Share{Target: config.ShareStdout},
	}
	svc, err := app.Build(context.Background(), cfg, afero.NewMemMapFs(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNew_EndToEnd(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("station-1"), bcrypt.MinCost)
	require.NoError(t, err)
	mux := New(newServices(t, string(hash)), slog.Default())

	resp := do(t, mux, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = do(t, mux, http.MethodGet, "/api/v1/visitors", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	payload := `{"firstName":"Anna","lastName":"Muster","street":"Weg 1","postalCode":"3000","city":"Bern","phoneNumber":"0791111111"}`
	body := `{"data":` + quote(payload) + `}`
	resp = do(t, mux, http.MethodPost, "/api/v1/checkins", body, "station-1")
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = do(t, mux, http.MethodPost, "/api/v1/archives", "", "station-1")
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = do(t, mux, http.MethodPost, "/api/v1/exports", "", "station-1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Anna"`)
	assert.Len(t, strings.Split(resp.Body.String(), "\n"), 2)

	resp = do(t, mux, http.MethodPost, "/api/v1/archives", "", "station-1")
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = do(t, mux, http.MethodGet, "/api/v1/visitors", "", "station-1")
	assert.Contains(t, resp.Body.String(), `"count":0`)

	resp = do(t, mux, http.MethodGet, "/openapi.json", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "checkin-create")
}

func TestNew_OpenWithoutHash(t *testing.T) {
	mux := New(newServices(t, ""), slog.Default())

	resp := do(t, mux, http.MethodGet, "/api/v1/visitors", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

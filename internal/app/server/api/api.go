//GET    /api/v1/health             # liveness (публичный)
//POST   /api/v1/checkins           # check-in по содержимому QR (auth)
//POST   /api/v1/checkouts          # check-out по номеру телефона (auth)
//GET    /api/v1/visitors           # список посетителей (auth)
//PUT    /api/v1/visitors/{index}   # изменить запись (auth)
//DELETE /api/v1/visitors/{index}   # удалить запись (auth)
//DELETE /api/v1/visitors           # очистить список (auth)
//POST   /api/v1/exports            # CSV выгрузка (auth)
//POST   /api/v1/archives           # архивировать список (auth)
//GET    /api/v1/archives           # список архивов (auth)
//GET    /api/v1/archives/{name}    # скачать архив (auth)
//DELETE /api/v1/archives/{name}    # удалить архив (auth)
//GET|PUT|DELETE /api/v1/profile    # профиль оператора (auth)
//GET    /api/v1/profile/qr         # QR профиля (auth)
//GET    /api/v1/link/qr            # QR ссылки на форму (auth)

package api

import (
	"ciao/internal/app"
	archiveAPI "ciao/internal/app/server/api/http/archive"
	exportAPI "ciao/internal/app/server/api/http/export"
	healthAPI "ciao/internal/app/server/api/http/health"
	"ciao/internal/app/server/api/http/middleware"
	"ciao/internal/app/server/api/http/middleware/auth"
	"ciao/internal/app/server/api/http/middleware/logger"
	profileAPI "ciao/internal/app/server/api/http/profile"
	scanAPI "ciao/internal/app/server/api/http/scan"
	visitorAPI "ciao/internal/app/server/api/http/visitor"
	"ciao/internal/i18n"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

const (
	title   = "Ciao API"
	version = "1.0.0"
)

type routes interface {
	SetupRoutes(api huma.API)
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(svc *app.Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	config := huma.DefaultConfig(title, version)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)
	for _, h := range handlers(svc, log) {
		h.SetupRoutes(API)
	}

	return mux
}

func handlers(svc *app.Services, log *slog.Logger) []routes {
	cfg := svc.Config
	catalog := svc.Catalog
	loc := catalog.Location()

	authMW := auth.New(cfg.Server.APITokenHash, catalog.T(i18n.Unauthorized), log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	if !authMW.Enabled() {
		log.Warn("api_token_hash is empty, the API accepts unauthenticated requests")
	}

	middlewares.Add(loggerMW.Middleware())
	health := healthAPI.NewHandler(catalog.Tag().String(), log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	scan := scanAPI.NewHandler(svc.Visitors, catalog, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	visitors := visitorAPI.NewHandler(svc.Visitors, catalog, loc, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	exports := exportAPI.NewHandler(svc.Exports, catalog, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	archives := archiveAPI.NewHandler(svc.Archives, catalog, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	profile := profileAPI.NewHandler(svc.Profile, cfg.LinkURL, catalog, log, middlewares.GetAllAndClear())

	return []routes{health, scan, visitors, exports, archives, profile}
}

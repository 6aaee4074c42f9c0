package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/observability"
	redisad "trip_planner/internal/adapters/redis"
	"trip_planner/internal/adapters/weather"
	"trip_planner/internal/app"
	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
	"trip_planner/internal/storage/jsonfile"
	mysqlsrc "trip_planner/internal/storage/mysql"

	composerad "trip_planner/internal/adapters/composer"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// catalog source
	var src domain.CatalogSource
	switch cfg.CatalogBackend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("catalog database connection ok")
		src = mysqlsrc.New(db)
	default:
		src = jsonfile.New(cfg.DataDir)
	}

	// deps
	store := catalog.NewStore(src)
	search := app.NewSearchService(store)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	wc := weather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.WeatherTimeout, cfg.WeatherRPS)
	cached := weather.NewCached(wc, cache, int(cfg.CacheTTL.Seconds()))

	var comp domain.Composer
	if cfg.OpenAIKey != "" {
		c, err := composerad.New(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatal().Err(err).Msg("composer init failed")
		}
		comp = c
	}
	planner := app.NewPlannerService(search, cached, comp)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Search: search, Planner: planner})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("catalog", cfg.CatalogBackend).
		Bool("composer", comp != nil).
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

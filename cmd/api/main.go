package main

import (
	"github.com/joho/godotenv"

	"github.com/farxc/atlas-fiscal/internal/db"
	"github.com/farxc/atlas-fiscal/internal/env"
	"github.com/farxc/atlas-fiscal/internal/geo"
	"github.com/farxc/atlas-fiscal/internal/logger"
	"github.com/farxc/atlas-fiscal/internal/source"
	"github.com/farxc/atlas-fiscal/internal/store"
)

func main() {
	// Local development keeps its secrets in a .env file; absence is fine
	godotenv.Load()

	appLogger := &logger.Logger{MinLevel: logger.ParseLevel(env.GetString("LOG_LEVEL", "info"))}

	cfg := config{
		addr: env.GetString("ADDR", ":8080"),
		db: dbConfig{
			addr:         env.GetString("DB_ADDR", ""),
			maxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 25),
			maxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 25),
			maxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		boundariesPath: env.GetString("BOUNDARIES_PATH", "data/limites_municipios.geojson"),
		provincePrefix: env.GetString("PROVINCE_PREFIX", geo.BuenosAiresPrefix),
	}

	// No connection string means the dashboard boots degraded: every
	// endpoint answers with empty data instead of refusing to start.
	var storage *store.Storage
	if cfg.db.addr == "" {
		appLogger.Warn("API", "DB_ADDR not set, starting without a data source")
	} else {
		pool, err := db.New(
			cfg.db.addr,
			cfg.db.maxOpenConns,
			cfg.db.maxIdleConns,
			cfg.db.maxIdleTime)
		if err != nil {
			appLogger.Warn("API", "Database connection failed, starting without a data source: %v", err)
		} else {
			defer pool.Close()
			appLogger.Info("API", "Database connection pool established")
			storage = store.NewStorage(pool)
		}
	}

	boundaries, err := geo.LoadBoundaries(cfg.boundariesPath, cfg.provincePrefix)
	if err != nil {
		appLogger.Warn("API", "Boundary file not loaded: %v", err)
	} else {
		appLogger.Info("API", "Loaded %d municipal boundaries", boundaries.Len())
	}

	app := &application{
		config:     cfg,
		logger:     appLogger,
		source:     source.New(storage, appLogger),
		boundaries: boundaries,
	}

	mux := app.mount()

	appLogger.Fatal("API", "%v", app.run(mux))
}

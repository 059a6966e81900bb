package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/farxc/atlas-fiscal/internal/db"
	"github.com/farxc/atlas-fiscal/internal/env"
	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/geo"
	"github.com/farxc/atlas-fiscal/internal/logger"
	"github.com/farxc/atlas-fiscal/internal/store"
)

type config struct {
	db dbConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func loadRegistry(ctx context.Context, path string, storage *store.Storage, appLogger *logger.Logger) ([]store.Municipality, error) {
	const component = "RegistryLoader"

	df, err := OpenRegistryAndDecode(path)
	if err != nil {
		return nil, err
	}
	appLogger.Info(component, "Registry file decoded: rows=%d columns=%d", df.Nrow(), len(df.Names()))

	loaded := make([]store.Municipality, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		muni, err := dfRowToMunicipality(df, i)
		if err != nil {
			appLogger.Warn(component, "Registry row skipped: %v", err)
			continue
		}

		if err := storage.Municipalities.Insert(ctx, &muni); err != nil {
			appLogger.Error(component, "Failed to upsert municipality %s (%s): %v", muni.Name, muni.Georef, err)
			continue
		}
		loaded = append(loaded, muni)
	}

	appLogger.Info(component, "Registry load completed: loaded=%d skipped=%d", len(loaded), df.Nrow()-len(loaded))
	return loaded, nil
}

func checkBoundaryCoverage(path, prefix string, loaded []store.Municipality, appLogger *logger.Logger) {
	const component = "BoundaryChecker"

	boundaries, err := geo.LoadBoundaries(path, prefix)
	if err != nil {
		appLogger.Warn(component, "Boundary file not loaded, skipping coverage check: %v", err)
		return
	}

	georefs := make([]string, 0, len(loaded))
	for _, m := range loaded {
		georefs = append(georefs, m.Georef)
	}

	matched, missing := boundaries.Coverage(georefs)
	appLogger.Info(component, "Boundary coverage: boundaries=%d matched=%d missing=%d", boundaries.Len(), matched, len(missing))
	for _, georef := range missing {
		appLogger.Warn(component, "Municipality has no boundary and will not render on the map: georef=%s", georef)
	}
}

func main() {
	const component = "Main"
	var appLogger = &logger.Logger{MinLevel: logger.LevelInfo}

	// Remove default timestamp since we add our own
	log.SetFlags(0)

	godotenv.Load()

	startingTime := time.Now()

	registryPtr := flag.String("registry", "data/registro_municipios.csv", "Path to the municipal registry CSV")
	boundariesPtr := flag.String("boundaries", "data/limites_municipios.geojson", "Path to the boundary GeoJSON")
	prefixPtr := flag.String("prefix", geo.BuenosAiresPrefix, "Province georef prefix for boundary filtering")
	logLevelPtr := flag.String("loglevel", env.GetString("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	flag.Parse()

	appLogger.SetLogLevel(logger.ParseLevel(strings.ToLower(*logLevelPtr)))
	appLogger.Info(component, "Registry ETL starting: startTime=%s registry=%s", startingTime.Format(time.RFC3339), *registryPtr)

	cfg := config{
		db: dbConfig{
			addr:         env.GetString("DB_ADDR", ""),
			maxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 25),
			maxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 25),
			maxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
	}

	if cfg.db.addr == "" {
		appLogger.Fatal(component, "DB_ADDR is required for the registry ETL")
		return
	}

	database, err := db.New(
		cfg.db.addr,
		cfg.db.maxOpenConns,
		cfg.db.maxIdleConns,
		cfg.db.maxIdleTime)

	if err != nil {
		appLogger.Fatal(component, "Database connection failed: error=%v", err)
		return
	}
	defer database.Close()
	appLogger.Info(component, "Database connection pool established")

	storage := store.NewStorage(database)
	ctx := context.Background()

	loaded, err := loadRegistry(ctx, *registryPtr, storage, appLogger)
	if err != nil {
		appLogger.Fatal(component, "Registry load failed: error=%v", err)
		return
	}

	for _, m := range loaded {
		appLogger.Debug(component, "Loaded municipality: georef=%s name=%s population=%s", m.Georef, m.Name, fiscal.FormatNumber(m.Population))
	}

	if !env.GetBool("ETL_SKIP_BOUNDARY_CHECK", false) {
		checkBoundaryCoverage(*boundariesPtr, *prefixPtr, loaded, appLogger)
	}

	timeTaken := time.Since(startingTime)
	appLogger.Info(component, "Registry ETL completed successfully: duration=%.2f seconds", timeTaken.Seconds())
}

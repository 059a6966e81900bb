package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/farxc/atlas-fiscal/internal/geo"
	"github.com/farxc/atlas-fiscal/internal/logger"
	"github.com/farxc/atlas-fiscal/internal/source"
)

type application struct {
	config     config
	logger     *logger.Logger
	source     *source.Source
	boundaries *geo.FeatureCollection
}

type config struct {
	addr           string
	db             dbConfig
	boundariesPath string
	provincePrefix string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/municipalities", func(r chi.Router) {
			r.Get("/", app.handleListMunicipalities)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.handleGetMunicipality)
				r.Get("/documents", app.handleListMunicipalityDocuments)
				r.Get("/comparison", app.handleGetMunicipalityComparison)
			})
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/", app.handleGetMetrics)
			r.Get("/provincial", app.handleGetProvincialSummary)
			r.Get("/top", app.handleGetTopMunicipalities)
			r.Get("/distribution", app.handleGetDistribution)
		})

		r.Route("/documents/{id}", func(r chi.Router) {
			r.Get("/summary", app.handleGetDocumentSummary)
			r.Get("/balance-sheet", app.handleGetBalanceSheet)
			r.Get("/treasury", app.handleGetTreasury)
			r.Get("/programs", app.handleGetDocumentPrograms)
		})

		r.Get("/programs", app.handleGetPrograms)
		r.Get("/boundaries", app.handleGetBoundaries)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	app.logger.Info("API", "Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}

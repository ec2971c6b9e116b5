// Package server exposes the query pipeline over HTTP: natural-language
// queries, raw forecasts, proactive insights, and saved-location CRUD.
// Responses are JSON by default and MessagePack with format=msgpack.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/classify"
	"github.com/ctrln3rd/lunara-watch/internal/interpret"
	"github.com/ctrln3rd/lunara-watch/internal/locations"
	"github.com/ctrln3rd/lunara-watch/internal/manager"
	"github.com/ctrln3rd/lunara-watch/pkg/responseformat"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server wires the classifier, forecast manager, interpreter, and the
// locations store behind a REST API.
type Server struct {
	classifier  classify.Classifier
	interpreter *interpret.Interpreter
	manager     *manager.Manager
	locations   *locations.Store
	formatter   *responseformat.Formatter
	logger      *zap.SugaredLogger
	now         func() time.Time
	httpServer  *http.Server
}

// Config carries the server's dependencies and listen address.
type Config struct {
	ListenAddr  string
	Classifier  classify.Classifier
	Interpreter *interpret.Interpreter
	Manager     *manager.Manager
	Locations   *locations.Store
	Logger      *zap.SugaredLogger
	Clock       func() time.Time
}

// New creates a Server. A nil logger or clock falls back to no-op logging
// and wall time.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	s := &Server{
		classifier:  cfg.Classifier,
		interpreter: cfg.Interpreter,
		manager:     cfg.Manager,
		locations:   cfg.Locations,
		formatter:   responseformat.NewFormatter(),
		logger:      cfg.Logger,
		now:         cfg.Clock,
	}
	s.httpServer = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: s.Router(),
	}
	return s
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/query", s.handleQuery).Methods(http.MethodPost)
	router.HandleFunc("/api/forecast", s.handleForecast).Methods(http.MethodGet)
	router.HandleFunc("/api/insights", s.handleInsights).Methods(http.MethodGet)

	router.HandleFunc("/api/locations", s.handleListLocations).Methods(http.MethodGet)
	router.HandleFunc("/api/locations/{type}", s.handleGetLocation).Methods(http.MethodGet)
	router.HandleFunc("/api/locations/{type}", s.handleSaveLocation).Methods(http.MethodPut)
	router.HandleFunc("/api/locations/{type}", s.handleDeleteLocation).Methods(http.MethodDelete)

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return router
}

// Start begins serving and blocks until ctx is cancelled, then shuts the
// listener down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("REST server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down the REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

package emr

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/records"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/seed"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/workflow"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/config"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/logger"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/gorilla/mux"
)

// Service exposes the record store and workflow engine to the
// dashboards over HTTP. It owns no clinical logic of its own: handlers
// decode requests, call into the core and encode the result.
type Service struct {
	config *config.Config
	logger *logger.Logger
	store  *records.Store
	engine *workflow.Engine
	server *http.Server
}

// New creates the EMR service: an empty record store, the workflow
// engine over it, and seed data when configured.
func New(cfg *config.Config, log *logger.Logger) (*Service, error) {
	store := records.New(&cfg.Identity, log)
	engine := workflow.NewEngine(store, log)

	if cfg.Seed.Enabled {
		if _, err := seed.Load(cfg.Seed.File, store, log); err != nil {
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
	}

	return &Service{
		config: cfg,
		logger: log,
		store:  store,
		engine: engine,
	}, nil
}

// Store returns the underlying record store
func (s *Service) Store() *records.Store {
	return s.store
}

// Engine returns the workflow engine
func (s *Service) Engine() *workflow.Engine {
	return s.engine
}

// Start starts the EMR HTTP server
func (s *Service) Start(addr string) error {
	router := mux.NewRouter()
	router.Use(monitoring.Middleware(s.logger))
	s.setupRoutes(router)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(s.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.config.Server.IdleTimeout) * time.Second,
	}

	s.logger.Infof("Starting EMR service on %s", addr)
	return s.server.ListenAndServe()
}

// Stop stops the EMR service
func (s *Service) Stop() error {
	if s.server != nil {
		s.logger.Info("Stopping EMR service")
		return s.server.Close()
	}
	return nil
}

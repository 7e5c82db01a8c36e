package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pipeserve/pipeserve/engine/pipeline"
	"github.com/pipeserve/pipeserve/pkg/config"
	"github.com/pipeserve/pipeserve/pkg/logger"
)

// Server exposes deployed pipelines over HTTP: deploy, undeploy, status and
// schema-validated run requests.
type Server struct {
	config   *config.Config
	registry *pipeline.Registry
	router   *gin.Engine
	cancel   context.CancelFunc
}

func NewServer(cfg *config.Config, registry *pipeline.Registry) *Server {
	s := &Server{
		config:   cfg,
		registry: registry,
	}
	s.buildRouter()
	return s
}

func (s *Server) buildRouter() {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(logger.GetDefault()))
	if s.config.Server.CORSEnabled {
		r.Use(CORSMiddleware())
	}
	registerRoutes(r, s.registry)
	s.router = r
}

// Handler returns the HTTP handler, useful for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	_, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	srv := s.createHTTPServer()
	go s.startServer(srv)
	return s.handleGracefulShutdown(srv)
}

func (s *Server) createHTTPServer() *http.Server {
	addr := s.config.Server.FullAddress()
	logger.Info("Starting HTTP server",
		"address", fmt.Sprintf("http://%s", addr),
	)
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func (s *Server) startServer(srv *http.Server) {
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed to start",
			"error", err,
		)
		os.Exit(1)
	}
}

func (s *Server) handleGracefulShutdown(srv *http.Server) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("Received shutdown signal, initiating graceful shutdown")

	s.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server shutdown completed successfully")
	return nil
}

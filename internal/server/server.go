// Package server exposes the cover letter orchestrator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/backend"
	"github.com/spigell/cover-letter/internal/letter"
)

const (
	DefaultListen   = ":5000"
	shutdownTimeout = 10 * time.Second
)

// Generator is the part of the orchestrator the server needs.
type Generator interface {
	Resolve(ctx context.Context, in letter.FormInput) (*letter.Result, error)
}

type Config struct {
	Listen         string
	AllowedOrigins []string
}

type Server struct {
	generator Generator
	logger    *zap.Logger
	listen    string
	engine    *gin.Engine
}

func New(cfg Config, generator Generator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	listen := strings.TrimSpace(cfg.Listen)
	if listen == "" {
		listen = DefaultListen
	}

	s := &Server{
		generator: generator,
		logger:    logger,
		listen:    listen,
	}
	s.engine = s.routes(cfg.AllowedOrigins)
	return s
}

func (s *Server) routes(origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger))

	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.POST(strings.TrimPrefix(backend.GeneratePath, "/api"), s.generate)
		api.GET(strings.TrimPrefix(backend.HealthPath, "/api"), s.health)
		api.HEAD(strings.TrimPrefix(backend.HealthPath, "/api"), s.health)
	}

	return r
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Addr() string {
	return s.listen
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("listen", s.listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.listen, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

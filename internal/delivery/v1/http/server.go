package http

import (
	"context"
	"net/http"

	"github.com/shoplens/go-backend/internal/cfg"
)

// Server wraps http.Server with the configured timeouts. It serves both the
// JSON API and the embedded dashboard page.
type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Run blocks until the listener fails or Stop is called.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

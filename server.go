package flighttransfer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/flight-transfer/internal/logging"
	"github.com/theoremus-urban-solutions/flight-transfer/observability"
	"github.com/theoremus-urban-solutions/flight-transfer/transfer"
)

// Server exposes the transfer service over HTTP.
type Server struct {
	svc           *transfer.Service
	metrics       *observability.Collector
	log           logging.Logger
	port          int
	staticDir     string
	allowedOrigin string

	httpServer *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithPort sets the listen port.
func WithPort(port int) ServerOption {
	return func(s *Server) { s.port = port }
}

// WithStaticDir serves files from dir for paths outside /api.
func WithStaticDir(dir string) ServerOption {
	return func(s *Server) { s.staticDir = dir }
}

// WithAllowedOrigin sets the Access-Control-Allow-Origin value.
func WithAllowedOrigin(origin string) ServerOption {
	return func(s *Server) {
		if origin != "" {
			s.allowedOrigin = origin
		}
	}
}

// WithMetrics records request metrics and exposes them on /metrics.
func WithMetrics(c *observability.Collector) ServerOption {
	return func(s *Server) { s.metrics = c }
}

// WithServerLogger sets the base logger; each request derives its own.
func WithServerLogger(l logging.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer builds a Server around svc.
func NewServer(svc *transfer.Service, opts ...ServerOption) *Server {
	s := &Server{
		svc:           svc,
		log:           logging.Noop(),
		port:          3000,
		allowedOrigin: "*",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /api/health", s.route("health", http.HandlerFunc(s.handleHealth)))
	mux.Handle("GET /api/flight", s.route("flight", http.HandlerFunc(s.handleFlight)))
	mux.Handle("GET /api/calculate", s.route("calculate", http.HandlerFunc(s.handleCalculate)))
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	if s.staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))
	}
	return s.withRequestLogging(s.withCORS(mux))
}

func (s *Server) route(name string, h http.Handler) http.Handler {
	return s.metrics.Middleware(name, h)
}

// Start begins serving in the background.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error(context.Background(), "server error", logging.Err(err))
			os.Exit(1)
		}
	}()
	s.log.Info(context.Background(), "server listening", logging.String("addr", addr))
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM and then shuts the
// server down.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info(ctx, "shutdown signal received")
	if err := s.Shutdown(ctx); err != nil {
		s.log.Error(ctx, "server shutdown error", logging.Err(err))
		return
	}
	s.log.Info(ctx, "server shut down successfully")
}

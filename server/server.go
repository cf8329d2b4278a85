package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/talentbridge/assist"
	"github.com/poiesic/talentbridge/auth"
	"github.com/poiesic/talentbridge/booking"
	"github.com/poiesic/talentbridge/metrics"
	"github.com/poiesic/talentbridge/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Server wires the marketplace services into an HTTP API.
type Server struct {
	assistant *assist.Assistant
	catalog   storage.CatalogRepository
	bookings  *booking.Service
	accounts  *auth.Service
	metrics   *metrics.Metrics
	logger    *slog.Logger
	mux       *http.ServeMux
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMetrics attaches Prometheus collectors and the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) error {
		s.metrics = m
		return nil
	}
}

// New creates a server over the given services.
func New(
	assistant *assist.Assistant,
	catalog storage.CatalogRepository,
	bookings *booking.Service,
	accounts *auth.Service,
	opts ...Option,
) (*Server, error) {
	if assistant == nil {
		return nil, ErrAssistantRequired
	}
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	if bookings == nil {
		return nil, ErrBookingServiceRequired
	}
	if accounts == nil {
		return nil, ErrAuthServiceRequired
	}

	s := &Server{
		assistant: assistant,
		catalog:   catalog,
		bookings:  bookings,
		accounts:  accounts,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.mux = http.NewServeMux()
	s.route("POST /api/chat", "chat", s.handleChat)
	s.route("POST /api/search", "search", s.handleSearch)
	s.route("GET /api/providers", "providers_list", s.handleListProviders)
	s.route("POST /api/providers", "providers_create", s.handleCreateProvider)
	s.route("GET /api/providers/{id}", "providers_get", s.handleGetProvider)
	s.route("POST /api/book/{id}", "book", s.handleBook)
	s.route("POST /api/auth/register", "register", s.handleRegister)
	s.route("POST /api/auth/login", "login", s.handleLogin)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics",
			promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	}

	return s, nil
}

func (s *Server) route(pattern, endpoint string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, metricsMiddleware(handler, endpoint, s.metrics))
}

// Handler returns the routing handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// Package server exposes the solve pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                     liveness probe
//	POST /api/solve                   solve a plan, persist and return the layout
//	GET  /api/layouts                 list stored layouts, newest first
//	GET  /api/layouts/{id}            fetch one stored layout
//	GET  /api/layouts/{id}/artifact   render a stored layout (?format=svg|json|txt|dot|png)
//
// Errors are JSON envelopes carrying the structured error code, so API
// clients branch on the same codes the CLI does.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dashu-baba/architect-layout-solver/pkg/pipeline"
	"github.com/dashu-baba/architect-layout-solver/pkg/store"
)

// Server is the HTTP API server.
type Server struct {
	addr     string
	runner   *pipeline.Runner
	store    store.Store
	logger   *log.Logger
	deadline time.Duration
}

// Options configures a Server.
type Options struct {
	Addr     string           // listen address, e.g. ":8080"
	Runner   *pipeline.Runner // solve pipeline (required)
	Store    store.Store      // layout persistence; defaults to in-memory
	Logger   *log.Logger      // defaults to log.Default()
	Deadline time.Duration    // per-solve deadline; zero means unbounded
}

// New creates a server. Nil collaborators are filled with defaults.
func New(opts Options) *Server {
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Server{
		addr:     opts.Addr,
		runner:   opts.Runner,
		store:    opts.Store,
		logger:   opts.Logger,
		deadline: opts.Deadline,
	}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/layouts", s.handleListLayouts)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Get("/layouts/{id}/artifact", s.handleArtifact)
	})

	return r
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("server shutting down")
	return srv.Shutdown(shutdownCtx)
}

// logRequests logs one line per request with method, path, status, and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/paperboy/internal/news/article"
	"github.com/taibuivan/paperboy/internal/news/comment"
	"github.com/taibuivan/paperboy/internal/news/topic"
	"github.com/taibuivan/paperboy/internal/news/user"
	"github.com/taibuivan/paperboy/internal/platform/config"
	"github.com/taibuivan/paperboy/internal/platform/constants"
	"github.com/taibuivan/paperboy/internal/platform/middleware"
	"github.com/taibuivan/paperboy/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New resources add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Docs serves the GET /api self-documentation payload.
	Docs http.HandlerFunc

	// Topic handles the topic catalogue.
	Topic *topic.Handler

	// Article handles articles and their nested comment routes.
	Article *article.Handler

	// Comment handles direct comment mutations (vote, delete).
	Comment *comment.Handler

	// User handles the user directory.
	User *user.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Set before Mount so sub-routers inherit the JSON 404 payload.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.JSON(writer, http.StatusNotFound, respond.ErrorEnvelope{Message: "Path not found"})
	})

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Resource route groups mounted under the /api prefix.
	r.Route("/api", func(api chi.Router) {
		api.Get("/", h.Docs)
		api.Mount("/topics", h.Topic.Routes())
		api.Mount("/articles", h.Article.Routes())
		api.Mount("/comments", h.Comment.Routes())
		api.Mount("/users", h.User.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the composed handler, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Package httpapi exposes the service over HTTP: streaming code generation,
// the model catalog, screenshot uploads, session tracking, and analytics
// exports. It is a thin layer over the provider dispatcher and the internal
// stores; all business rules live below it.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kwen-qodo/screenshot-to-code/internal/analytics"
	"github.com/kwen-qodo/screenshot-to-code/internal/config"
	"github.com/kwen-qodo/screenshot-to-code/internal/session"
	"github.com/kwen-qodo/screenshot-to-code/internal/upload"
	"github.com/kwen-qodo/screenshot-to-code/providers/ai"
)

const (
	maxBodyBytes        = 20 << 20 // Request bodies carry base64 screenshots
	shutdownGracePeriod = 10 * time.Second
)

// Server wires the HTTP surface to the dispatcher and stores.
type Server struct {
	cfg        *config.Config
	registry   *ai.Registry
	dispatcher *ai.Dispatcher
	sessions   session.Store
	events     *analytics.Logger
	uploads    *upload.Store
	app        *echo.Echo
}

// New constructs an HTTP server wired with routing and middleware.
func New(cfg *config.Config, registry *ai.Registry, dispatcher *ai.Dispatcher, sessions session.Store, events *analytics.Logger, uploads *upload.Store) (*Server, error) {
	if registry == nil || dispatcher == nil {
		return nil, errors.New("registry and dispatcher must not be nil")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency: true,
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"error", v.Error,
			)
			return nil
		},
	}))
	e.Use(middleware.CORS())

	srv := &Server{
		cfg:        cfg,
		registry:   registry,
		dispatcher: dispatcher,
		sessions:   sessions,
		events:     events,
		uploads:    uploads,
		app:        e,
	}

	srv.registerRoutes()

	return srv, nil
}

// Run starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("starting server", "addr", s.cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.app.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := s.app.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		slog.Info("server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) registerRoutes() {
	s.app.GET("/health", s.handleHealth)
	s.app.GET("/api/models", s.handleListModels)

	api := s.app.Group("/api", s.sessionMiddleware)
	api.POST("/generate", s.handleGenerate)

	api.POST("/upload", s.handleUpload)
	api.GET("/files/:name", s.handleGetFile)
	api.DELETE("/files/:name", s.handleDeleteFile)

	api.GET("/session/info", s.handleSessionInfo)
	api.POST("/session/track", s.handleSessionTrack)
	api.GET("/session/actions", s.handleSessionActions)
	api.DELETE("/session/clear", s.handleSessionClear)

	api.GET("/export/:user_id", s.handleExportEvents)
	api.POST("/export/report", s.handleExportReport)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// modelListing is the catalog entry shape exposed to the front-end. The
// catalog base URL stays internal.
type modelListing struct {
	Identifier        string `json:"identifier"`
	Family            string `json:"family"`
	MaxOutputTokens   int    `json:"max_output_tokens"`
	SupportsStreaming bool   `json:"supports_streaming"`
	Deprecated        bool   `json:"deprecated,omitempty"`
}

func (s *Server) handleListModels(c echo.Context) error {
	includeDeprecated := c.QueryParam("include_deprecated") == "1"

	specs := s.registry.List(includeDeprecated)
	listings := make([]modelListing, 0, len(specs))
	for _, spec := range specs {
		listings = append(listings, modelListing{
			Identifier:        spec.Identifier,
			Family:            string(spec.Family),
			MaxOutputTokens:   spec.MaxOutputTokens,
			SupportsStreaming: spec.SupportsStreaming,
			Deprecated:        spec.Deprecated,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"models": listings})
}

func decodeRequestBody[T any](c echo.Context, target *T) error {
	req := c.Request()
	defer req.Body.Close()

	req.Body = http.MaxBytesReader(c.Response(), req.Body, maxBodyBytes)

	decoder := json.NewDecoder(req.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return requestError{Status: http.StatusBadRequest, Message: "request body is required"}
		}
		return requestError{Status: http.StatusBadRequest, Message: fmt.Sprintf("invalid JSON payload: %v", err)}
	}
	return nil
}

type requestError struct {
	Status  int
	Message string
}

func (e requestError) Error() string {
	return e.Message
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var reqErr requestError
	if errors.As(err, &reqErr) {
		_ = c.JSON(reqErr.Status, map[string]string{"error": reqErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]any{"error": httpErr.Message})
		return
	}

	_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// Package api exposes the aggregator over HTTP with echo.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/amishk599/jobhunter/internal/model"
)

// Options carries the server-side defaults applied to every request.
type Options struct {
	Version        string
	DefaultSources []model.Source
	DefaultLimit   int
	Credentials    model.Credentials // fallbacks for providers needing keys
}

// New builds the echo instance with middleware and routes registered.
func New(searcher Searcher, opts Options, logger *slog.Logger) *echo.Echo {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 10
	}
	if opts.DefaultSources == nil {
		opts.DefaultSources = model.DefaultSources
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	h := &handler{searcher: searcher, opts: opts}
	e.GET("/", h.index)
	e.GET("/health", h.health)

	jobs := e.Group("/jobs")
	jobs.GET("/search", h.search)
	jobs.GET("/remote", h.remote)
	jobs.GET("/themuse", h.theMuse)
	jobs.GET("/adzuna", h.adzuna)
	jobs.GET("/reed", h.reed)

	return e
}

// requestLogger writes one slog line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", redactURI(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}

// secretParams are the query parameters that carry provider credentials.
var secretParams = []string{"adzuna_app_id", "adzuna_app_key", "reed_api_key", "app_id", "app_key", "api_key"}

// redactURI masks credential values in a request URI before it is logged.
// A URI or query that does not parse is reduced to its path.
func redactURI(uri string) string {
	u, err := url.ParseRequestURI(uri)
	if err != nil {
		path, _, _ := strings.Cut(uri, "?")
		return path
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return u.Path
	}
	changed := false
	for _, name := range secretParams {
		if q.Has(name) {
			q.Set(name, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.RequestURI()
}

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/amishk599/jobhunter/internal/aggregator"
	"github.com/amishk599/jobhunter/internal/envelope"
	"github.com/amishk599/jobhunter/internal/model"
)

// Searcher runs one fan-out search. *aggregator.Aggregator satisfies it.
type Searcher interface {
	SearchAll(ctx context.Context, req aggregator.Request) (*model.SearchResult, error)
}

type handler struct {
	searcher Searcher
	opts     Options
}

func (h *handler) index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"name":    "jobhunter",
		"version": h.opts.Version,
		"endpoints": map[string]string{
			"search":        "/jobs/search",
			"remotive_only": "/jobs/remote",
			"themuse_only":  "/jobs/themuse",
			"adzuna_only":   "/jobs/adzuna",
			"reed_only":     "/jobs/reed",
			"health":        "/health",
		},
	})
}

func (h *handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) search(c echo.Context) error {
	req := searchRequest{
		ResultsPerSource: h.opts.DefaultLimit,
		Sources:          joinSources(h.opts.DefaultSources),
	}
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sources, err := model.ParseSources(req.Sources)
	if err != nil {
		return err
	}

	return h.run(c, aggregator.Request{
		Query:          req.Query,
		Location:       req.Location,
		RemoteOnly:     req.RemoteOnly,
		LimitPerSource: req.ResultsPerSource,
		Sources:        sources,
		Credentials:    req.credentials().Merge(h.opts.Credentials),
	})
}

func (h *handler) remote(c echo.Context) error {
	req := remoteRequest{Limit: singleSourceDefaultLimit}
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	query := req.Query
	if query == "" {
		query = "all"
	}
	return h.run(c, aggregator.Request{
		Query:          req.Query,
		LimitPerSource: req.Limit,
		Sources:        model.NewSourceSet(model.SourceRemotive),
	}, envelope.WithQuery(query), envelope.WithLocation("remote"))
}

func (h *handler) theMuse(c echo.Context) error {
	req := theMuseRequest{Limit: singleSourceDefaultLimit}
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.run(c, aggregator.Request{
		Query:          req.Query,
		Location:       req.Location,
		LimitPerSource: req.Limit,
		Sources:        model.NewSourceSet(model.SourceTheMuse),
	})
}

func (h *handler) adzuna(c echo.Context) error {
	req := adzunaRequest{Limit: singleSourceDefaultLimit}
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	creds := model.Credentials{
		AdzunaAppID:   req.AppID,
		AdzunaAppKey:  req.AppKey,
		AdzunaCountry: req.Country,
	}
	return h.run(c, aggregator.Request{
		Query:          req.Query,
		Location:       req.Location,
		LimitPerSource: req.Limit,
		Sources:        model.NewSourceSet(model.SourceAdzuna),
		Credentials:    creds.Merge(h.opts.Credentials),
	})
}

func (h *handler) reed(c echo.Context) error {
	req := reedRequest{Limit: singleSourceDefaultLimit}
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.run(c, aggregator.Request{
		Query:          req.Query,
		Location:       req.Location,
		LimitPerSource: req.Limit,
		Sources:        model.NewSourceSet(model.SourceReed),
		Credentials:    model.Credentials{ReedAPIKey: req.APIKey}.Merge(h.opts.Credentials),
	})
}

// run executes req and writes the envelope.
func (h *handler) run(c echo.Context, req aggregator.Request, opts ...envelope.Option) error {
	res, err := h.searcher.SearchAll(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Build(res, opts...))
}

func joinSources(sources []model.Source) string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = string(s)
	}
	return strings.Join(names, ",")
}

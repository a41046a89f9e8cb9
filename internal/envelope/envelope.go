// Package envelope shapes a SearchResult into the wire response returned to
// callers.
package envelope

import (
	"time"

	"github.com/amishk599/jobhunter/internal/model"
)

// SearchResponse is the JSON envelope for every search endpoint.
type SearchResponse struct {
	Query       string               `json:"query"`
	Location    *string              `json:"location"`
	Total       int                  `json:"total"`
	SourcesUsed map[model.Source]int `json:"sources_used"`
	Errors      []string             `json:"errors"` // null when every provider succeeded
	Jobs        []model.Job          `json:"jobs"`
	FetchedAt   string               `json:"fetched_at"`
}

// Option adjusts the envelope after it is built.
type Option func(*SearchResponse)

// WithQuery replaces the reported query.
func WithQuery(q string) Option {
	return func(r *SearchResponse) { r.Query = q }
}

// WithLocation replaces the reported location.
func WithLocation(loc string) Option {
	return func(r *SearchResponse) { r.Location = &loc }
}

// Build copies res into a SearchResponse. An empty location is reported as
// null and fetched_at is RFC 3339 in UTC.
func Build(res *model.SearchResult, opts ...Option) SearchResponse {
	resp := SearchResponse{
		Query:       res.Query,
		Total:       res.Total,
		SourcesUsed: res.SourcesUsed,
		Errors:      res.Errors,
		Jobs:        res.Jobs,
		FetchedAt:   res.FetchedAt.UTC().Format(time.RFC3339),
	}
	if res.Location != "" {
		loc := res.Location
		resp.Location = &loc
	}
	if resp.SourcesUsed == nil {
		resp.SourcesUsed = map[model.Source]int{}
	}
	if resp.Jobs == nil {
		resp.Jobs = []model.Job{}
	}
	if len(resp.Errors) == 0 {
		resp.Errors = nil
	}

	for _, opt := range opts {
		opt(&resp)
	}
	return resp
}

package model

import (
	"context"
	"time"
)

// Job is the unified representation of a listing from any provider.
// Optional fields are pointers so "absent" survives to the wire as null.
type Job struct {
	ID             string   `json:"id"` // "<source>-<provider id>"
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       *string  `json:"location"`
	IsRemote       bool     `json:"is_remote"`
	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
	SalaryCurrency *string  `json:"salary_currency"`
	SalaryDisplay  *string  `json:"salary_display"`
	JobType        *string  `json:"job_type"`
	Category       *string  `json:"category"`
	Description    *string  `json:"description"`
	URL            string   `json:"url"`
	PostedAt       *string  `json:"posted_at"` // provider-native format
	Source         Source   `json:"source"`
}

// PostedAtKey returns the sort key for PostedAt; absent sorts as "".
func (j Job) PostedAtKey() string {
	if j.PostedAt == nil {
		return ""
	}
	return *j.PostedAt
}

// SearchQuery is what a single provider call is asked for.
type SearchQuery struct {
	Text     string
	Location string
	Limit    int
}

// SearchResult bundles one fan-out's findings. It is built once per request
// and not modified afterwards.
type SearchResult struct {
	Query       string
	Location    string
	Total       int
	SourcesUsed map[Source]int
	Errors      []string
	Jobs        []Job
	FetchedAt   time.Time
}

// JobSearcher queries one provider and normalizes its listings.
type JobSearcher interface {
	Source() Source
	Search(ctx context.Context, q SearchQuery) ([]Job, error)
}

// JobFilter decides whether a job survives into the merged result.
type JobFilter interface {
	Match(job Job) bool
}

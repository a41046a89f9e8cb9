package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/amishk599/jobhunter/internal/filter"
	"github.com/amishk599/jobhunter/internal/model"
)

const (
	// MaxLimitPerSource is the largest per-provider limit any caller may ask for.
	MaxLimitPerSource = 100

	// DefaultTimeout bounds each provider call when New is given none.
	DefaultTimeout = 15 * time.Second
)

// Factory builds the searcher for one provider using the request's
// credentials.
type Factory func(src model.Source, creds model.Credentials) (model.JobSearcher, error)

// Request is one fan-out search.
type Request struct {
	Query          string
	Location       string
	RemoteOnly     bool
	LimitPerSource int
	Sources        model.SourceSet // an empty set is valid and yields no jobs
	Credentials    model.Credentials
}

// Aggregator owns the fan-out pipeline for a single request:
// gate → dispatch concurrently → join → filter → merge → sort.
type Aggregator struct {
	factory Factory
	timeout time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// New creates an aggregator. timeout bounds every provider call on its own.
func New(factory Factory, timeout time.Duration, logger *slog.Logger) *Aggregator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Aggregator{
		factory: factory,
		timeout: timeout,
		now:     time.Now,
		logger:  logger,
	}
}

// outcome is the result of one provider call: jobs on success, err otherwise.
type outcome struct {
	source model.Source
	jobs   []model.Job
	err    error
}

// SearchAll queries every enabled provider whose credentials are present and
// merges what comes back. Provider failures are reported in the result's
// Errors; the only error returned is a *model.ValidationError.
func (a *Aggregator) SearchAll(ctx context.Context, req Request) (*model.SearchResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	start := time.Now()
	searchers, planErrs := a.plan(req)

	q := model.SearchQuery{
		Text:     req.Query,
		Location: req.Location,
		Limit:    req.LimitPerSource,
	}
	outcomes := a.dispatch(ctx, searchers, q)

	result := merge(outcomes, filter.ForRequest(req.RemoteOnly))
	result.Query = req.Query
	result.Location = req.Location
	result.Errors = append(planErrs, result.Errors...)
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	result.FetchedAt = a.now().UTC()

	for _, o := range outcomes {
		if o.err != nil {
			a.logger.Warn("provider failed", "source", o.source, "error", o.err)
		}
	}
	a.logger.Info("search complete",
		"query", req.Query,
		"dispatched", len(searchers),
		"total", result.Total,
		"errors", len(result.Errors),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return result, nil
}

func validate(req Request) error {
	if req.LimitPerSource < 1 || req.LimitPerSource > MaxLimitPerSource {
		return &model.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxLimitPerSource, req.LimitPerSource),
		}
	}
	for src := range req.Sources {
		if !src.Valid() {
			return &model.ValidationError{Field: "sources", Message: fmt.Sprintf("unknown source %q", src)}
		}
	}
	return nil
}

// plan picks the providers to call, in dispatch order. Providers missing
// their credentials are skipped without an error entry.
func (a *Aggregator) plan(req Request) ([]model.JobSearcher, []string) {
	var searchers []model.JobSearcher
	var errs []string
	for _, src := range req.Sources.Ordered() {
		if !req.Credentials.Satisfies(src) {
			a.logger.Debug("skipping source without credentials", "source", src)
			continue
		}
		s, err := a.factory(src, req.Credentials)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", src, err))
			continue
		}
		searchers = append(searchers, s)
	}
	return searchers, errs
}

// dispatch runs every searcher concurrently and waits for all of them. No
// call is cancelled because another failed.
func (a *Aggregator) dispatch(ctx context.Context, searchers []model.JobSearcher, q model.SearchQuery) []outcome {
	outcomes := make([]outcome, len(searchers))

	var g errgroup.Group
	for i, s := range searchers {
		g.Go(func() error {
			outcomes[i] = a.call(ctx, s, q)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return an error

	return outcomes
}

// call runs one provider under its own timeout and turns a panic into an
// ordinary failure.
func (a *Aggregator) call(ctx context.Context, s model.JobSearcher, q model.SearchQuery) (o outcome) {
	o.source = s.Source()
	defer func() {
		if r := recover(); r != nil {
			o = outcome{source: s.Source(), err: fmt.Errorf("panic: %v", r)}
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	o.jobs, o.err = s.Search(callCtx, q)
	return o
}

// merge filters each provider's jobs, concatenates them in dispatch order,
// and sorts newest first. The sort is stable, so equal dates keep dispatch
// order; absent dates compare as "" and land last.
func merge(outcomes []outcome, f model.JobFilter) *model.SearchResult {
	result := &model.SearchResult{
		SourcesUsed: make(map[model.Source]int),
		Jobs:        make([]model.Job, 0),
	}

	for _, o := range outcomes {
		if o.err != nil {
			result.Errors = append(result.Errors, errorEntry(o.source, o.err))
			continue
		}
		kept := filter.Apply(f, o.jobs)
		result.SourcesUsed[o.source] = len(kept)
		result.Jobs = append(result.Jobs, kept...)
	}

	sort.SliceStable(result.Jobs, func(i, j int) bool {
		return result.Jobs[i].PostedAtKey() > result.Jobs[j].PostedAtKey()
	})
	result.Total = len(result.Jobs)
	return result
}

// errorEntry formats "<provider>: <message>".
func errorEntry(src model.Source, err error) string {
	var upErr *model.UpstreamError
	if errors.As(err, &upErr) {
		return fmt.Sprintf("%s: %s", src, upErr.Message())
	}
	return fmt.Sprintf("%s: %v", src, err)
}

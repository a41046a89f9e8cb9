package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/amishk599/jobhunter/internal/model"
)

// getJSON issues exactly one GET and decodes the body into out. Every failure
// is returned as a *model.UpstreamError for src.
func getJSON(ctx context.Context, client *http.Client, src model.Source, endpoint string, params url.Values, header http.Header, out any) error {
	target := endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &model.UpstreamError{Source: src, Err: fmt.Errorf("build request: %w", stripURL(err))}
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return &model.UpstreamError{Source: src, Err: stripURL(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var statusErr error
		if text := http.StatusText(resp.StatusCode); text != "" {
			statusErr = errors.New(text)
		}
		return &model.UpstreamError{Source: src, StatusCode: resp.StatusCode, Err: statusErr}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &model.UpstreamError{Source: src, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// stripURL drops the request URL from a *url.Error. Adzuna credentials ride
// in the query string and the error text ends up in responses and logs.
func stripURL(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	if urlErr.Timeout() {
		return fmt.Errorf("%s request timed out: %w", urlErr.Op, urlErr.Err)
	}
	return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
}

// mapItems decodes each raw item independently so one malformed entry is
// skipped instead of failing the whole call. It stops after limit jobs.
func mapItems[T any](items []json.RawMessage, limit int, src model.Source, logger *slog.Logger, normalize func(T) model.Job) []model.Job {
	jobs := make([]model.Job, 0, min(len(items), limit))
	for i, raw := range items {
		if len(jobs) >= limit {
			break
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logger.Warn("skipping malformed item", "source", src, "index", i, "error", err)
			continue
		}
		jobs = append(jobs, normalize(item))
	}
	return jobs
}

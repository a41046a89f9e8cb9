package adapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amishk599/jobhunter/internal/model"
)

const remotiveBaseURL = "https://remotive.com/api/remote-jobs"

// remotiveJob represents a single job in the Remotive API response.
type remotiveJob struct {
	ID                        flexID `json:"id"`
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	Salary                    string `json:"salary"`
	JobType                   string `json:"job_type"`
	Category                  string `json:"category"`
	Description               string `json:"description"`
	URL                       string `json:"url"`
	PublicationDate           string `json:"publication_date"`
}

type remotiveResponse struct {
	Jobs []json.RawMessage `json:"jobs"`
}

// RemotiveAdapter searches Remotive. Its catalog is remote-only and needs no
// credentials.
type RemotiveAdapter struct {
	client *http.Client
	logger *slog.Logger
}

// NewRemotiveAdapter creates a Remotive adapter.
func NewRemotiveAdapter(client *http.Client, logger *slog.Logger) *RemotiveAdapter {
	return &RemotiveAdapter{client: client, logger: logger}
}

func (a *RemotiveAdapter) Source() model.Source { return model.SourceRemotive }

// Search queries Remotive. An empty query lists the latest jobs. Location is
// not a Remotive filter and is ignored.
func (a *RemotiveAdapter) Search(ctx context.Context, q model.SearchQuery) ([]model.Job, error) {
	limit := max(q.Limit, 1)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if q.Text != "" {
		params.Set("search", q.Text)
	}

	var resp remotiveResponse
	if err := getJSON(ctx, a.client, model.SourceRemotive, remotiveBaseURL, params, nil, &resp); err != nil {
		return nil, err
	}

	// The API treats limit as a hint.
	return mapItems(resp.Jobs, limit, model.SourceRemotive, a.logger, normalizeRemotive), nil
}

func normalizeRemotive(rj remotiveJob) model.Job {
	location := orDefault(rj.CandidateRequiredLocation, "Remote")
	description := stripTags(rj.Description)
	return model.Job{
		ID:            "remotive-" + string(rj.ID),
		Title:         orDefault(rj.Title, "N/A"),
		Company:       orDefault(rj.CompanyName, "Unknown"),
		Location:      &location,
		IsRemote:      true,
		SalaryDisplay: optString(rj.Salary),
		JobType:       optString(rj.JobType),
		Category:      optString(rj.Category),
		Description:   ptr(truncate(description, descriptionLimit)),
		URL:           rj.URL,
		PostedAt:      optString(rj.PublicationDate),
		Source:        model.SourceRemotive,
	}
}

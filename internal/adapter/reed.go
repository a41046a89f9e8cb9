package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amishk599/jobhunter/internal/model"
)

const (
	reedBaseURL = "https://www.reed.co.uk/api/1.0/search"
	reedMaxTake = 100
)

// reedJob represents a single result in the Reed search response.
type reedJob struct {
	JobID          flexID   `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	EmployerName   string   `json:"employerName"`
	LocationName   string   `json:"locationName"`
	MinimumSalary  *float64 `json:"minimumSalary"`
	MaximumSalary  *float64 `json:"maximumSalary"`
	ContractType   string   `json:"contractType"`
	JobDescription string   `json:"jobDescription"`
	JobURL         string   `json:"jobUrl"`
	Date           string   `json:"date"`
}

type reedResponse struct {
	Results []json.RawMessage `json:"results"`
}

// ReedAdapter searches the Reed UK jobseeker API.
type ReedAdapter struct {
	apiKey string
	client *http.Client
	logger *slog.Logger
}

// NewReedAdapter creates an adapter authenticated with apiKey.
func NewReedAdapter(apiKey string, client *http.Client, logger *slog.Logger) *ReedAdapter {
	return &ReedAdapter{
		apiKey: apiKey,
		client: client,
		logger: logger,
	}
}

func (a *ReedAdapter) Source() model.Source { return model.SourceReed }

// Search queries Reed. The API key is sent as the Basic auth username with
// an empty password.
func (a *ReedAdapter) Search(ctx context.Context, q model.SearchQuery) ([]model.Job, error) {
	limit := clampLimit(q.Limit, reedMaxTake)

	params := url.Values{}
	params.Set("keywords", q.Text)
	params.Set("resultsToTake", strconv.Itoa(limit))
	if q.Location != "" {
		params.Set("locationName", q.Location)
	}

	token := base64.StdEncoding.EncodeToString([]byte(a.apiKey + ":"))
	header := http.Header{}
	header.Set("Authorization", "Basic "+token)

	var resp reedResponse
	if err := getJSON(ctx, a.client, model.SourceReed, reedBaseURL, params, header, &resp); err != nil {
		return nil, err
	}

	return mapItems(resp.Results, limit, model.SourceReed, a.logger, normalizeReed), nil
}

func normalizeReed(rj reedJob) model.Job {
	currency := "GBP"
	return model.Job{
		ID:             "reed-" + string(rj.JobID),
		Title:          orDefault(rj.JobTitle, "N/A"),
		Company:        orDefault(rj.EmployerName, "Unknown"),
		Location:       optString(rj.LocationName),
		IsRemote:       inferRemote(rj.LocationName),
		SalaryMin:      rj.MinimumSalary,
		SalaryMax:      rj.MaximumSalary,
		SalaryCurrency: &currency,
		SalaryDisplay:  salaryDisplay(currency, rj.MinimumSalary, rj.MaximumSalary),
		JobType:        optString(rj.ContractType),
		Description:    cleanDescription(rj.JobDescription),
		URL:            rj.JobURL,
		PostedAt:       optString(rj.Date),
		Source:         model.SourceReed,
	}
}

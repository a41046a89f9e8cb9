package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amishk599/jobhunter/internal/model"
)

const (
	adzunaBaseURL        = "https://api.adzuna.com/v1/api/jobs"
	adzunaMaxPerPage     = 50
	adzunaDefaultCountry = "us"
)

// adzunaJob represents a single result in the Adzuna search response.
type adzunaJob struct {
	ID      flexID `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	ContractType string   `json:"contract_type"`
	Category     struct {
		Label string `json:"label"`
	} `json:"category"`
	Description string `json:"description"`
	RedirectURL string `json:"redirect_url"`
	Created     string `json:"created"`
}

type adzunaResponse struct {
	Results []json.RawMessage `json:"results"`
}

// AdzunaAdapter searches the Adzuna jobs API. It needs an app ID and key.
type AdzunaAdapter struct {
	appID   string
	appKey  string
	country string
	client  *http.Client
	logger  *slog.Logger
}

// NewAdzunaAdapter creates an adapter for one Adzuna country index.
// An empty country selects "us".
func NewAdzunaAdapter(appID, appKey, country string, client *http.Client, logger *slog.Logger) *AdzunaAdapter {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		country = adzunaDefaultCountry
	}
	return &AdzunaAdapter{
		appID:   appID,
		appKey:  appKey,
		country: country,
		client:  client,
		logger:  logger,
	}
}

func (a *AdzunaAdapter) Source() model.Source { return model.SourceAdzuna }

// currency is inferred from the country index, not from the payload.
func (a *AdzunaAdapter) currency() string {
	if a.country == "us" {
		return "USD"
	}
	return "GBP"
}

// Search fetches the first results page, newest first.
func (a *AdzunaAdapter) Search(ctx context.Context, q model.SearchQuery) ([]model.Job, error) {
	limit := clampLimit(q.Limit, adzunaMaxPerPage)

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", strconv.Itoa(limit))
	params.Set("what", q.Text)
	params.Set("content-type", "application/json")
	params.Set("sort_by", "date")
	if q.Location != "" {
		params.Set("where", q.Location)
	}

	endpoint := fmt.Sprintf("%s/%s/search/1", adzunaBaseURL, url.PathEscape(a.country))

	var resp adzunaResponse
	if err := getJSON(ctx, a.client, model.SourceAdzuna, endpoint, params, nil, &resp); err != nil {
		return nil, err
	}

	return mapItems(resp.Results, limit, model.SourceAdzuna, a.logger, a.normalize), nil
}

func (a *AdzunaAdapter) normalize(aj adzunaJob) model.Job {
	currency := a.currency()
	return model.Job{
		ID:             "adzuna-" + string(aj.ID),
		Title:          orDefault(aj.Title, "N/A"),
		Company:        orDefault(aj.Company.DisplayName, "Unknown"),
		Location:       optString(aj.Location.DisplayName),
		IsRemote:       inferRemote(aj.Location.DisplayName),
		SalaryMin:      aj.SalaryMin,
		SalaryMax:      aj.SalaryMax,
		SalaryCurrency: &currency,
		SalaryDisplay:  salaryDisplay(currency, aj.SalaryMin, aj.SalaryMax),
		JobType:        optString(aj.ContractType),
		Category:       optString(aj.Category.Label),
		Description:    cleanDescription(aj.Description),
		URL:            aj.RedirectURL,
		PostedAt:       optString(aj.Created),
		Source:         model.SourceAdzuna,
	}
}

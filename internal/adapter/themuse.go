package adapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/amishk599/jobhunter/internal/model"
)

const theMuseBaseURL = "https://www.themuse.com/api/public/jobs"

type theMuseNamed struct {
	Name string `json:"name"`
}

// theMuseJob represents a single result in The Muse public jobs API.
type theMuseJob struct {
	ID              flexID         `json:"id"`
	Name            string         `json:"name"`
	Company         theMuseNamed   `json:"company"`
	Locations       []theMuseNamed `json:"locations"`
	Levels          []theMuseNamed `json:"levels"`
	Categories      []theMuseNamed `json:"categories"`
	Contents        string         `json:"contents"`
	PublicationDate string         `json:"publication_date"`
	Refs            struct {
		LandingPage string `json:"landing_page"`
	} `json:"refs"`
}

type theMuseResponse struct {
	Results []json.RawMessage `json:"results"`
}

// TheMuseAdapter searches The Muse. No credentials are needed.
type TheMuseAdapter struct {
	client *http.Client
	logger *slog.Logger
}

// NewTheMuseAdapter creates a The Muse adapter.
func NewTheMuseAdapter(client *http.Client, logger *slog.Logger) *TheMuseAdapter {
	return &TheMuseAdapter{client: client, logger: logger}
}

func (a *TheMuseAdapter) Source() model.Source { return model.SourceTheMuse }

// Search fetches the first page, newest first, and keeps at most q.Limit
// jobs since the API has no page-size parameter.
func (a *TheMuseAdapter) Search(ctx context.Context, q model.SearchQuery) ([]model.Job, error) {
	limit := max(q.Limit, 1)

	params := url.Values{}
	params.Set("page", "1")
	params.Set("descending", "true")
	if q.Text != "" {
		params.Set("query", q.Text)
	}
	if q.Location != "" {
		params.Set("location", q.Location)
	}

	var resp theMuseResponse
	if err := getJSON(ctx, a.client, model.SourceTheMuse, theMuseBaseURL, params, nil, &resp); err != nil {
		return nil, err
	}

	return mapItems(resp.Results, limit, model.SourceTheMuse, a.logger, normalizeTheMuse), nil
}

func normalizeTheMuse(mj theMuseJob) model.Job {
	var location *string
	isRemote := false
	if len(mj.Locations) > 0 {
		names := make([]string, len(mj.Locations))
		for i, l := range mj.Locations {
			names[i] = l.Name
			if inferRemote(l.Name) {
				isRemote = true
			}
		}
		location = ptr(strings.Join(names, ", "))
	}

	job := model.Job{
		ID:          "themuse-" + string(mj.ID),
		Title:       orDefault(mj.Name, "N/A"),
		Company:     orDefault(mj.Company.Name, "Unknown"),
		Location:    location,
		IsRemote:    isRemote,
		Description: cleanDescription(mj.Contents),
		URL:         mj.Refs.LandingPage,
		PostedAt:    optString(mj.PublicationDate),
		Source:      model.SourceTheMuse,
	}
	if len(mj.Levels) > 0 {
		job.JobType = optString(mj.Levels[0].Name)
	}
	if len(mj.Categories) > 0 {
		job.Category = optString(mj.Categories[0].Name)
	}
	return job
}

package api

import "github.com/amishk599/jobhunter/internal/model"

// searchRequest binds GET /jobs/search.
type searchRequest struct {
	Query            string `query:"query" validate:"required"`
	Location         string `query:"location"`
	RemoteOnly       bool   `query:"remote_only"`
	ResultsPerSource int    `query:"results_per_source" validate:"min=1,max=50"`
	Sources          string `query:"sources"`
	AdzunaAppID      string `query:"adzuna_app_id"`
	AdzunaAppKey     string `query:"adzuna_app_key"`
	AdzunaCountry    string `query:"adzuna_country"`
	ReedAPIKey       string `query:"reed_api_key"`
}

func (r searchRequest) credentials() model.Credentials {
	return model.Credentials{
		AdzunaAppID:   r.AdzunaAppID,
		AdzunaAppKey:  r.AdzunaAppKey,
		AdzunaCountry: r.AdzunaCountry,
		ReedAPIKey:    r.ReedAPIKey,
	}
}

// remoteRequest binds GET /jobs/remote. The query is optional.
type remoteRequest struct {
	Query string `query:"query"`
	Limit int    `query:"limit" validate:"min=1,max=100"`
}

type theMuseRequest struct {
	Query    string `query:"query" validate:"required"`
	Location string `query:"location"`
	Limit    int    `query:"limit" validate:"min=1,max=50"`
}

type adzunaRequest struct {
	Query    string `query:"query" validate:"required"`
	Location string `query:"location"`
	AppID    string `query:"app_id" validate:"required"`
	AppKey   string `query:"app_key" validate:"required"`
	Country  string `query:"country"`
	Limit    int    `query:"limit" validate:"min=1,max=50"`
}

type reedRequest struct {
	Query    string `query:"query" validate:"required"`
	Location string `query:"location"`
	APIKey   string `query:"api_key" validate:"required"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
}

const singleSourceDefaultLimit = 20

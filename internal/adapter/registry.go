package adapter

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/amishk599/jobhunter/internal/model"
)

// New builds the adapter for src using the caller's credentials. It does not
// check whether the credentials are complete; callers gate on
// model.Credentials.Satisfies first.
func New(src model.Source, creds model.Credentials, client *http.Client, logger *slog.Logger) (model.JobSearcher, error) {
	switch src {
	case model.SourceAdzuna:
		return NewAdzunaAdapter(creds.AdzunaAppID, creds.AdzunaAppKey, creds.AdzunaCountry, client, logger), nil
	case model.SourceReed:
		return NewReedAdapter(creds.ReedAPIKey, client, logger), nil
	case model.SourceRemotive:
		return NewRemotiveAdapter(client, logger), nil
	case model.SourceTheMuse:
		return NewTheMuseAdapter(client, logger), nil
	default:
		return nil, fmt.Errorf("unsupported source %q", src)
	}
}

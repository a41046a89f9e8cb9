package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/amishk599/jobhunter/internal/aggregator"
	"github.com/amishk599/jobhunter/internal/envelope"
	"github.com/amishk599/jobhunter/internal/model"
	"github.com/amishk599/jobhunter/internal/tui"
)

// maxResultsPerSource matches the results_per_source bound of GET /jobs/search.
const maxResultsPerSource = 50

var searchFlags struct {
	location   string
	remoteOnly bool
	limit      int
	sources    string
	asJSON     bool
	browse     bool
	creds      model.Credentials
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run one search and print the merged results",
	Long:  "One-shot fan-out from the terminal. Uses the same filters as GET /jobs/search.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchFlags.location, "location", "l", "", "location filter passed to providers")
	f.BoolVarP(&searchFlags.remoteOnly, "remote-only", "r", false, "keep remote jobs only")
	f.IntVarP(&searchFlags.limit, "limit", "n", 0, "results per provider, 1-50 (default: search.default_limit)")
	f.StringVarP(&searchFlags.sources, "sources", "s", "", "comma-separated providers (default: search.default_sources)")
	f.BoolVar(&searchFlags.asJSON, "json", false, "print the JSON response envelope")
	f.BoolVar(&searchFlags.browse, "browse", false, "page through results full-screen")
	f.StringVar(&searchFlags.creds.AdzunaAppID, "adzuna-app-id", "", "Adzuna app id")
	f.StringVar(&searchFlags.creds.AdzunaAppKey, "adzuna-app-key", "", "Adzuna app key")
	f.StringVar(&searchFlags.creds.AdzunaCountry, "adzuna-country", "", "Adzuna country code")
	f.StringVar(&searchFlags.creds.ReedAPIKey, "reed-api-key", "", "Reed API key")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Log lines would tear through the spinner and the rendered list, so
	// they only go to stderr with --debug.
	var logOut io.Writer = io.Discard
	if debug {
		logOut = os.Stderr
	}
	cfg, logger := mustLoad(logOut)

	req, err := buildSearchRequest(strings.Join(args, " "), cfg.Search.DefaultSources, cfg.Search.DefaultLimit, cfg.Credentials)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	agg := newAggregator(cfg, logger)
	search := func(ctx context.Context) (*model.SearchResult, error) {
		return agg.SearchAll(ctx, req)
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !searchFlags.asJSON
	var res *model.SearchResult
	if interactive {
		res, err = tui.RunLoader(ctx, sourceLabel(req.Sources), search)
	} else {
		res, err = search(ctx)
	}
	if err != nil {
		return err
	}

	switch {
	case searchFlags.asJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(envelope.Build(res))
	case searchFlags.browse && interactive:
		return tui.RunPager(tui.Render(res))
	default:
		fmt.Fprint(cmd.OutOrStdout(), tui.Render(res))
		return nil
	}
}

// buildSearchRequest applies config defaults to the flags.
func buildSearchRequest(query string, defaultSources []model.Source, defaultLimit int, fallback model.Credentials) (aggregator.Request, error) {
	sources := model.NewSourceSet(defaultSources...)
	if searchFlags.sources != "" {
		var err error
		if sources, err = model.ParseSources(searchFlags.sources); err != nil {
			return aggregator.Request{}, err
		}
	}
	limit := defaultLimit
	if searchFlags.limit != 0 {
		limit = searchFlags.limit
	}
	if limit < 1 || limit > maxResultsPerSource {
		return aggregator.Request{}, &model.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", maxResultsPerSource, limit),
		}
	}
	return aggregator.Request{
		Query:          query,
		Location:       searchFlags.location,
		RemoteOnly:     searchFlags.remoteOnly,
		LimitPerSource: limit,
		Sources:        sources,
		Credentials:    searchFlags.creds.Merge(fallback),
	}, nil
}

func sourceLabel(set model.SourceSet) string {
	ordered := set.Ordered()
	names := make([]string, len(ordered))
	for i, s := range ordered {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

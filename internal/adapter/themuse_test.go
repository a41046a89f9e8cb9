package adapter

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/amishk599/jobhunter/internal/model"
)

func TestTheMuseSearch_Success(t *testing.T) {
	payload := `{
		"page": 1,
		"results": [
			{
				"id": 901,
				"name": "Site Reliability Engineer",
				"company": {"name": "Muse Labs"},
				"locations": [{"name": "New York, NY"}, {"name": "Flexible / Remote"}],
				"levels": [{"name": "Senior Level"}, {"name": "Mid Level"}],
				"categories": [{"name": "Software Engineering"}],
				"contents": "<p>Keep &amp; things <i>up</i>.</p>",
				"publication_date": "2026-10-16T02:00:00Z",
				"refs": {"landing_page": "https://www.themuse.com/jobs/muselabs/sre"}
			},
			{
				"id": 902,
				"name": "Designer",
				"company": {"name": "Muse Labs"},
				"locations": [{"name": "Chicago, IL"}],
				"publication_date": "2026-10-10T02:00:00Z",
				"refs": {}
			}
		]
	}`

	srv := serveJSON(t, payload, func(r *http.Request) {
		if r.URL.Path != "/api/public/jobs" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "1" || q.Get("descending") != "true" {
			t.Errorf("unexpected paging params: %s", r.URL.RawQuery)
		}
		if q.Get("query") != "sre" || q.Get("location") != "New York, NY" {
			t.Errorf("unexpected query params: %s", r.URL.RawQuery)
		}
	})

	a := NewTheMuseAdapter(newTestClient(srv), discardLogger())
	jobs, err := a.Search(context.Background(), model.SearchQuery{Text: "sre", Location: "New York, NY", Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "themuse-901" || j.Title != "Site Reliability Engineer" || j.Company != "Muse Labs" {
		t.Errorf("unexpected identity fields: %+v", j)
	}
	if deref(j.Location) != "New York, NY, Flexible / Remote" {
		t.Errorf("Location = %s", deref(j.Location))
	}
	if !j.IsRemote {
		t.Error("expected a remote location to mark the job remote")
	}
	if deref(j.JobType) != "Senior Level" || deref(j.Category) != "Software Engineering" {
		t.Errorf("JobType/Category = %s/%s", deref(j.JobType), deref(j.Category))
	}
	// Entities are left alone; only tags are removed.
	if deref(j.Description) != "Keep &amp; things up." {
		t.Errorf("Description = %q", deref(j.Description))
	}

	other := jobs[1]
	if other.IsRemote {
		t.Error("expected Chicago job not to be remote")
	}
	if other.URL != "" {
		t.Errorf("URL = %q, want empty", other.URL)
	}
	if other.JobType != nil || other.Category != nil || other.Description != nil {
		t.Error("expected absent optional fields")
	}
}

func TestTheMuseSearch_NoLocations(t *testing.T) {
	srv := serveJSON(t, `{"results": [{"id": 1, "name": "Anywhere"}]}`, nil)

	a := NewTheMuseAdapter(newTestClient(srv), discardLogger())
	jobs, err := a.Search(context.Background(), model.SearchQuery{Text: "x", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs[0].Location != nil || jobs[0].IsRemote {
		t.Errorf("expected no location and not remote, got %s/%v", deref(jobs[0].Location), jobs[0].IsRemote)
	}
}

func TestTheMuseSearch_SlicesToLimit(t *testing.T) {
	srv := serveJSON(t, `{"results": [{"id": 1}, {"id": 2}, {"id": 3}]}`, nil)

	a := NewTheMuseAdapter(newTestClient(srv), discardLogger())
	jobs, err := a.Search(context.Background(), model.SearchQuery{Text: "x", Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
}

func TestTheMuseSearch_NetworkFailure(t *testing.T) {
	srv := serveJSON(t, `{}`, nil)
	client := newTestClient(srv)
	srv.Close()

	a := NewTheMuseAdapter(client, discardLogger())
	_, err := a.Search(context.Background(), model.SearchQuery{Text: "x", Limit: 2})
	var upErr *model.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *model.UpstreamError, got %v", err)
	}
	if upErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for a transport failure", upErr.StatusCode)
	}
	if upErr.Source != model.SourceTheMuse {
		t.Errorf("Source = %s", upErr.Source)
	}
}

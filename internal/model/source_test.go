package model

import (
	"errors"
	"testing"
)

func TestParseSources(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Source
	}{
		{name: "default pair", raw: "remotive,themuse", want: []Source{SourceRemotive, SourceTheMuse}},
		{name: "case and spaces", raw: " Reed , ADZUNA ", want: []Source{SourceAdzuna, SourceReed}},
		{name: "blanks ignored", raw: "remotive,,", want: []Source{SourceRemotive}},
		{name: "empty", raw: "", want: []Source{}},
		{name: "dispatch order wins", raw: "reed,adzuna,themuse,remotive", want: AllSources},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := ParseSources(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := set.Ordered()
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("position %d: got %s, want %s", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseSources_Unknown(t *testing.T) {
	_, err := ParseSources("remotive,indeed")
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "sources" {
		t.Errorf("Field = %q, want sources", vErr.Field)
	}
}

func TestCredentialsSatisfies(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		src   Source
		want  bool
	}{
		{"remotive needs nothing", Credentials{}, SourceRemotive, true},
		{"themuse needs nothing", Credentials{}, SourceTheMuse, true},
		{"adzuna missing both", Credentials{}, SourceAdzuna, false},
		{"adzuna missing key", Credentials{AdzunaAppID: "id"}, SourceAdzuna, false},
		{"adzuna complete", Credentials{AdzunaAppID: "id", AdzunaAppKey: "key"}, SourceAdzuna, true},
		{"reed missing", Credentials{}, SourceReed, false},
		{"reed complete", Credentials{ReedAPIKey: "k"}, SourceReed, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.creds.Satisfies(tc.src); got != tc.want {
				t.Errorf("Satisfies(%s) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}

func TestCredentialsMerge_RequestWins(t *testing.T) {
	req := Credentials{ReedAPIKey: "from-request"}
	fallback := Credentials{ReedAPIKey: "from-config", AdzunaAppID: "cfg-id", AdzunaCountry: "gb"}

	got := req.Merge(fallback)
	if got.ReedAPIKey != "from-request" {
		t.Errorf("ReedAPIKey = %q, want from-request", got.ReedAPIKey)
	}
	if got.AdzunaAppID != "cfg-id" || got.AdzunaCountry != "gb" {
		t.Errorf("fallback fields not applied: %+v", got)
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Source: SourceReed, StatusCode: 503}
	if got := err.Error(); got != "reed: HTTP 503" {
		t.Errorf("Error() = %q", got)
	}

	err = &UpstreamError{Source: SourceAdzuna, Err: errors.New("connection refused")}
	if got := err.Message(); got != "connection refused" {
		t.Errorf("Message() = %q", got)
	}
}

package model

import (
	"fmt"
	"strings"
)

// Source identifies a job-listing provider.
type Source string

const (
	SourceAdzuna   Source = "adzuna"
	SourceReed     Source = "reed"
	SourceRemotive Source = "remotive"
	SourceTheMuse  Source = "themuse"
)

// AllSources lists every provider in dispatch order. Merged results keep this
// order as the tiebreak for equal posting dates.
var AllSources = []Source{SourceRemotive, SourceTheMuse, SourceAdzuna, SourceReed}

// DefaultSources is used when the caller names none.
var DefaultSources = []Source{SourceRemotive, SourceTheMuse}

// Valid reports whether s is one of the known providers.
func (s Source) Valid() bool {
	for _, known := range AllSources {
		if s == known {
			return true
		}
	}
	return false
}

// SourceSet is an explicit set of enabled providers.
type SourceSet map[Source]struct{}

// NewSourceSet builds a set from the given sources.
func NewSourceSet(sources ...Source) SourceSet {
	set := make(SourceSet, len(sources))
	for _, s := range sources {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether s is enabled.
func (set SourceSet) Has(s Source) bool {
	_, ok := set[s]
	return ok
}

// Ordered returns the enabled sources in dispatch order.
func (set SourceSet) Ordered() []Source {
	out := make([]Source, 0, len(set))
	for _, s := range AllSources {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// ParseSources parses a comma-separated provider list. Names are trimmed and
// case-insensitive; blanks are ignored. Unknown names are a ValidationError.
func ParseSources(raw string) (SourceSet, error) {
	set := make(SourceSet)
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		s := Source(name)
		if !s.Valid() {
			return nil, &ValidationError{
				Field:   "sources",
				Message: fmt.Sprintf("unknown source %q (want one of %s)", name, joinSources(AllSources)),
			}
		}
		set[s] = struct{}{}
	}
	return set, nil
}

func joinSources(sources []Source) string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Credentials carries caller-supplied provider secrets for one request.
type Credentials struct {
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string // defaults to "us"
	ReedAPIKey    string
}

// Satisfies reports whether the credentials needed by s are present.
// Providers without credentials always pass.
func (c Credentials) Satisfies(s Source) bool {
	switch s {
	case SourceAdzuna:
		return c.AdzunaAppID != "" && c.AdzunaAppKey != ""
	case SourceReed:
		return c.ReedAPIKey != ""
	default:
		return true
	}
}

// Merge returns c with empty fields filled from fallback.
func (c Credentials) Merge(fallback Credentials) Credentials {
	if c.AdzunaAppID == "" {
		c.AdzunaAppID = fallback.AdzunaAppID
	}
	if c.AdzunaAppKey == "" {
		c.AdzunaAppKey = fallback.AdzunaAppKey
	}
	if c.AdzunaCountry == "" {
		c.AdzunaCountry = fallback.AdzunaCountry
	}
	if c.ReedAPIKey == "" {
		c.ReedAPIKey = fallback.ReedAPIKey
	}
	return c
}

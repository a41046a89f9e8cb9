package adapter

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
)

// descriptionLimit is the maximum description length, in characters, after
// tags are stripped.
const descriptionLimit = 500

// htmlTagRegex removes anything shaped like a tag. It is not a sanitizer and
// can leave fragments of malformed markup behind.
var htmlTagRegex = regexp.MustCompile(`<.*?>`)

// stripTags removes markup without touching entities or whitespace.
func stripTags(content string) string {
	return htmlTagRegex.ReplaceAllString(content, "")
}

// truncate cuts s to at most n characters (runes, not bytes).
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// cleanDescription strips tags and truncates. An empty input is absent.
func cleanDescription(raw string) *string {
	if raw == "" {
		return nil
	}
	return ptr(truncate(stripTags(raw), descriptionLimit))
}

// inferRemote is the fallback remote test for providers without a flag.
func inferRemote(location string) bool {
	return strings.Contains(strings.ToLower(location), "remote")
}

// currencySymbol covers the currencies adapters report: GBP and USD.
func currencySymbol(currency string) string {
	if currency == "GBP" {
		return "£"
	}
	return "$"
}

// salaryDisplay formats "<sym><min> - <sym><max>" with thousands separators
// and no decimals. Both bounds must be present.
func salaryDisplay(currency string, min, max *float64) *string {
	if min == nil || max == nil {
		return nil
	}
	sym := currencySymbol(currency)
	s := sym + formatAmount(*min) + " - " + sym + formatAmount(*max)
	return &s
}

// formatAmount rounds half to even, like fixed-point formatting does.
func formatAmount(v float64) string {
	return humanize.Comma(int64(math.RoundToEven(v)))
}

func clampLimit(limit, max int) int {
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}

func ptr[T any](v T) *T {
	return &v
}

// optString returns nil for the empty string.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// flexID accepts provider IDs encoded either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

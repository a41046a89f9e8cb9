package adapter

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple tags", input: "<p>Hello <b>world</b></p>", want: "Hello world"},
		{name: "attributes", input: `<a href="https://x.io">link</a>`, want: "link"},
		{name: "entities untouched", input: "<p>R&amp;D</p>", want: "R&amp;D"},
		{name: "unclosed tag left behind", input: "<b>bold</b> <unclosed", want: "bold <unclosed"},
		{name: "tag spanning a newline is not matched", input: "a<br\n/>b", want: "a<br\n/>b"},
		{name: "plain text", input: "No tags here.", want: "No tags here."},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripTags(tc.input); got != tc.want {
				t.Errorf("stripTags(%q)\n got  %q\n want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruncate_CountsCharactersNotBytes(t *testing.T) {
	long := strings.Repeat("é", 600)
	got := truncate(long, 500)
	if n := utf8.RuneCountInString(got); n != 500 {
		t.Fatalf("rune count = %d, want 500", n)
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a multi-byte character")
	}

	if got := truncate("short", 500); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate(strings.Repeat("x", 500), 500); len(got) != 500 {
		t.Errorf("exactly-500 input changed length to %d", len(got))
	}
}

func TestCleanDescription(t *testing.T) {
	if cleanDescription("") != nil {
		t.Error("empty description should be absent")
	}

	raw := "<div>" + strings.Repeat("a", 300) + "</div><p>" + strings.Repeat("b", 300) + "</p>"
	got := cleanDescription(raw)
	if got == nil {
		t.Fatal("expected a description")
	}
	if len(*got) != 500 {
		t.Fatalf("length = %d, want 500", len(*got))
	}
	if !strings.HasPrefix(*got, strings.Repeat("a", 300)+"b") {
		t.Error("expected the 500 characters to be taken from the stripped text")
	}
}

func TestInferRemote(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"Remote", true},
		{"remote - US", true},
		{"Fully REMOTE", true},
		{"London", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := inferRemote(tc.location); got != tc.want {
			t.Errorf("inferRemote(%q) = %v, want %v", tc.location, got, tc.want)
		}
	}
}

func TestSalaryDisplay(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		currency string
		min, max *float64
		want     string
	}{
		{name: "usd", currency: "USD", min: f(85000), max: f(120000), want: "$85,000 - $120,000"},
		{name: "gbp", currency: "GBP", min: f(30000), max: f(1250000), want: "£30,000 - £1,250,000"},
		{name: "other currency uses dollar sign", currency: "EUR", min: f(1000), max: f(2000), want: "$1,000 - $2,000"},
		{name: "small numbers", currency: "USD", min: f(0), max: f(999), want: "$0 - $999"},
		{name: "half rounds to even", currency: "USD", min: f(1234.5), max: f(1235.5), want: "$1,234 - $1,236"},
		{name: "missing max", currency: "USD", min: f(1), max: nil, want: "<nil>"},
		{name: "missing min", currency: "USD", min: nil, max: f(1), want: "<nil>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := deref(salaryDisplay(tc.currency, tc.min, tc.max)); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	if got := clampLimit(0, 50); got != 1 {
		t.Errorf("clampLimit(0) = %d, want 1", got)
	}
	if got := clampLimit(75, 50); got != 50 {
		t.Errorf("clampLimit(75) = %d, want 50", got)
	}
	if got := clampLimit(20, 50); got != 20 {
		t.Errorf("clampLimit(20) = %d, want 20", got)
	}
}

func TestFlexID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{"id": 12345}`, "12345"},
		{`{"id": "abc-9"}`, "abc-9"},
		{`{"id": null}`, ""},
		{`{}`, ""},
	}
	for _, tc := range tests {
		var v struct {
			ID flexID `json:"id"`
		}
		if err := json.Unmarshal([]byte(tc.input), &v); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tc.input, err)
		}
		if string(v.ID) != tc.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tc.input, v.ID, tc.want)
		}
	}

	var bad struct {
		ID flexID `json:"id"`
	}
	if err := json.Unmarshal([]byte(`{"id": {"nested": true}}`), &bad); err == nil {
		t.Error("expected error for object id")
	}
}

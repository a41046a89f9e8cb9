// Package tui renders search results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobhunter/internal/model"
)

var (
	accent = lipgloss.Color("39") // bright blue
	dim    = lipgloss.Color("245")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)

	jobSubtitleStyle = lipgloss.NewStyle().
				Foreground(dim)

	remoteBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")) // green

	sourceBadgeStyle = lipgloss.NewStyle().
				Foreground(accent)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Underline(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // soft red
)

// Render formats a result as a header, one block per job, and any provider
// errors at the end.
func Render(res *model.SearchResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(header(res)))
	b.WriteString("\n")
	b.WriteString(jobSubtitleStyle.Render(sourceSummary(res.SourcesUsed)))
	b.WriteString("\n\n")

	if len(res.Jobs) == 0 {
		b.WriteString(jobSubtitleStyle.Render("No jobs found."))
		b.WriteString("\n")
	}
	for i, j := range res.Jobs {
		b.WriteString(renderJob(i+1, j))
		b.WriteString("\n")
	}

	for _, e := range res.Errors {
		b.WriteString(errorStyle.Render("! " + e))
		b.WriteString("\n")
	}
	return b.String()
}

func header(res *model.SearchResult) string {
	h := fmt.Sprintf("%d jobs for %q", res.Total, res.Query)
	if res.Location != "" {
		h += " in " + res.Location
	}
	return h
}

// sourceSummary lists per-provider counts in dispatch order.
func sourceSummary(used map[model.Source]int) string {
	if len(used) == 0 {
		return "no providers answered"
	}
	parts := make([]string, 0, len(used))
	for _, src := range model.AllSources {
		if n, ok := used[src]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", src, n))
		}
	}
	return strings.Join(parts, " · ")
}

func renderJob(n int, j model.Job) string {
	title := jobTitleStyle.Render(fmt.Sprintf("%d. %s", n, j.Title))
	if j.IsRemote {
		title += " " + remoteBadgeStyle.Render("[remote]")
	}
	title += " " + sourceBadgeStyle.Render("("+string(j.Source)+")")

	var sub []string
	sub = append(sub, j.Company)
	if j.Location != nil && *j.Location != "" {
		sub = append(sub, *j.Location)
	}
	if j.SalaryDisplay != nil {
		sub = append(sub, *j.SalaryDisplay)
	}
	if j.PostedAt != nil {
		sub = append(sub, "posted "+*j.PostedAt)
	}

	return title + "\n" +
		"   " + jobSubtitleStyle.Render(strings.Join(sub, " · ")) + "\n" +
		"   " + urlStyle.Render(j.URL) + "\n"
}

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text draws the whole view below the input form
func Text(v View, st Styles) string {
	var blocks []string
	if v.Loading {
		blocks = append(blocks, Loader("", st))
	}
	if panels := Panels(v, st); panels != "" {
		blocks = append(blocks, panels)
	}
	return strings.Join(blocks, "\n")
}

// Loader draws the loading indicator, optionally after a spinner frame
func Loader(spinner string, st Styles) string {
	if spinner == "" {
		return st.Muted.Render(LoadingLabel)
	}
	return spinner + " " + st.Muted.Render(LoadingLabel)
}

// Panels draws the result card and the failure panel, whichever are present
func Panels(v View, st Styles) string {
	var blocks []string
	if v.Card != nil {
		blocks = append(blocks, cardText(v.Card, st), detailsText(v.Card, st))
	}
	if v.Failure != nil {
		blocks = append(blocks, failureText(v.Failure, st))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func cardText(c *Card, st Styles) string {
	header := st.Title.Render(ResultsHeader)
	if c.ConfidenceBadge != "" {
		header += "  " + st.badge.Inherit(st.Class(c.ConfidenceClass)).Render(c.ConfidenceBadge)
	}

	lines := []string{header, "", st.Class(string(c.Variant)).Render(c.Decision)}
	if c.Note != "" {
		lines = append(lines, st.Muted.Render(c.Note))
	}
	return st.Card(c.Variant).Render(strings.Join(lines, "\n"))
}

func detailsText(c *Card, st Styles) string {
	row := func(label, value, class string) string {
		return st.Label.Render(label) + st.Class(class).Render(value)
	}

	lines := []string{
		st.Title.Render(DetailsHeader),
		row("Website Accessibility:", c.Accessibility, c.AccessibilityClass),
	}
	if c.WebsiteError != "" {
		lines = append(lines, row("Website Error:", c.WebsiteError, "warning"))
	}
	lines = append(lines,
		row("Analysis Status:", c.AnalysisStatus, c.AnalysisClass),
		row("Content Analysis:", c.ContentAnalysis, c.ContentClass),
		row("URL Analysis:", c.URLAnalysis, c.URLClass),
	)
	return st.Details.Render(strings.Join(lines, "\n"))
}

func failureText(f *FailurePanel, st Styles) string {
	lines := []string{
		st.Error.Render(f.Header),
		f.Message,
		"",
		st.Bold.Render(SuggestionsLabel),
	}
	for _, s := range f.Suggestions {
		lines = append(lines, "  • "+s)
	}
	return st.failure.Render(strings.Join(lines, "\n"))
}

package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles is the palette used to draw a View
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Label   lipgloss.Style
	Bold    lipgloss.Style
	Error   lipgloss.Style
	Input   lipgloss.Style
	Button  lipgloss.Style
	Details lipgloss.Style

	cards   map[Variant]lipgloss.Style
	classes map[string]lipgloss.Style
	badge   lipgloss.Style
	failure lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w honouring the color mode
// (auto, always, never)
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// NewStyles builds the palette on r
func NewStyles(r *lipgloss.Renderer) Styles {
	red := lipgloss.Color("9")
	green := lipgloss.Color("42")
	amber := lipgloss.Color("214")
	blue := lipgloss.Color("12")
	gray := lipgloss.Color("8")

	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return Styles{
		Title:   r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Faint(true),
		Label:   r.NewStyle().Faint(true).Width(24),
		Bold:    r.NewStyle().Bold(true),
		Error:   r.NewStyle().Foreground(red).Bold(true),
		Input:   box.BorderForeground(gray),
		Button:  r.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
		Details: box.BorderForeground(gray),

		cards: map[Variant]lipgloss.Style{
			VariantPhishing: box.BorderForeground(red),
			VariantSafe:     box.BorderForeground(green),
		},
		classes: map[string]lipgloss.Style{
			"phishing":    r.NewStyle().Foreground(red).Bold(true),
			"safe":        r.NewStyle().Foreground(green).Bold(true),
			"unavailable": r.NewStyle().Faint(true),
			"success":     r.NewStyle().Foreground(green),
			"warning":     r.NewStyle().Foreground(amber),
			"complete":    r.NewStyle().Foreground(green),
			"partial":     r.NewStyle().Foreground(amber),
			"high":        r.NewStyle().Foreground(blue).Bold(true),
			"medium":      r.NewStyle().Foreground(amber),
			"low":         r.NewStyle().Faint(true),
		},
		badge:   r.NewStyle().Reverse(true).Padding(0, 1),
		failure: box.BorderForeground(red),
	}
}

// Class returns the style for a view class; unknown classes are unstyled
func (s Styles) Class(name string) lipgloss.Style {
	if st, ok := s.classes[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Card returns the frame for a card variant
func (s Styles) Card(v Variant) lipgloss.Style {
	if st, ok := s.cards[v]; ok {
		return st
	}
	return s.cards[VariantSafe]
}

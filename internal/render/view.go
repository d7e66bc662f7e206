// Package render turns checker state into what the user sees. Build is a pure
// function of the state; Text draws the result with lipgloss.
package render

import (
	"strings"

	"github.com/ppiankov/phishcheck/internal/checker"
	"github.com/ppiankov/phishcheck/internal/model"
)

// Variant is the visual treatment of the result card
type Variant string

const (
	VariantPhishing Variant = "phishing"
	VariantSafe     Variant = "safe"
)

// Labels shown by the view
const (
	Title            = "Phishing Website Detector"
	SubmitLabel      = "Check URL"
	SubmitBusyLabel  = "Checking..."
	LoadingLabel     = "Loading..."
	ResultsHeader    = "Analysis Results"
	DetailsHeader    = "Analysis Details"
	FailureHeader    = "Analysis Failed"
	SuggestionsLabel = "Suggestions:"
)

// Suggestions are listed under every failure
var Suggestions = []string{
	"Check if the URL is correctly formatted",
	"Ensure the website is accessible",
	"Try again in a few moments",
}

// View is everything visible for one state
type View struct {
	Loading     bool
	SubmitLabel string
	Card        *Card
	Failure     *FailurePanel
}

// Card presents an Outcome
type Card struct {
	Variant         Variant
	ConfidenceBadge string // "" hides the badge
	ConfidenceClass string
	Decision        string
	Note            string

	Accessibility      string
	AccessibilityClass string // success, warning
	WebsiteError       string
	AnalysisStatus     string
	AnalysisClass      string // complete, partial
	ContentAnalysis    string
	ContentClass       string // phishing, safe, unavailable
	URLAnalysis        string
	URLClass           string
}

// FailurePanel presents a Failure
type FailurePanel struct {
	Header      string
	Message     string
	Suggestions []string
}

// Build maps state onto the view
func Build(st checker.State) View {
	v := View{
		Loading:     st.Loading,
		SubmitLabel: SubmitLabel,
	}
	if st.Loading {
		v.SubmitLabel = SubmitBusyLabel
	}
	if st.Outcome != nil {
		v.Card = BuildCard(st.Outcome)
	}
	if st.Failure != nil {
		v.Failure = &FailurePanel{
			Header:      FailureHeader,
			Message:     st.Failure.Message,
			Suggestions: Suggestions,
		}
	}
	return v
}

// BuildCard maps an outcome onto the result card
func BuildCard(o *model.Outcome) *Card {
	c := &Card{
		Variant:         DecisionVariant(o.Decision),
		Decision:        o.Decision,
		Note:            o.Note,
		WebsiteError:    o.WebsiteError,
		ContentAnalysis: PredictionLabel(o.Webcode),
		ContentClass:    PredictionClass(o.Webcode),
		URLAnalysis:     PredictionLabel(o.URL),
		URLClass:        PredictionClass(o.URL),
	}

	if o.Confidence != "" {
		c.ConfidenceBadge = o.Confidence + " Confidence"
		c.ConfidenceClass = strings.ToLower(o.Confidence)
	}

	c.Accessibility, c.AccessibilityClass = "Not Accessible", "warning"
	if o.WebsiteAccessible {
		c.Accessibility, c.AccessibilityClass = "Accessible", "success"
	}

	c.AnalysisStatus, c.AnalysisClass = "Partial", "partial"
	if o.AnalysisComplete {
		c.AnalysisStatus, c.AnalysisClass = "Complete", "complete"
	}

	return c
}

// DecisionVariant is phishing when the decision mentions phishing in any case
func DecisionVariant(decision string) Variant {
	if strings.Contains(strings.ToLower(decision), "phishing") {
		return VariantPhishing
	}
	return VariantSafe
}

// PredictionLabel renders a sub-prediction
func PredictionLabel(p *int) string {
	switch {
	case p == nil:
		return "Unavailable"
	case *p == 1:
		return "Phishing"
	default:
		return "Safe"
	}
}

// PredictionClass is the style class of a sub-prediction
func PredictionClass(p *int) string {
	switch {
	case p == nil:
		return "unavailable"
	case *p == 1:
		return "phishing"
	default:
		return "safe"
	}
}

package model

// Query is the URL the user is about to submit
type Query struct {
	URL string `json:"url"`
}

// Outcome is the phishing verdict returned by the detection service for one URL.
// Empty strings stand for fields the service left out or sent as null.
type Outcome struct {
	Webcode           *int   `json:"webcode"`                 // Content-based prediction: 0 safe, 1 phishing, nil unavailable
	URL               *int   `json:"url"`                     // URL-based prediction: 0 safe, 1 phishing, nil unavailable
	Decision          string `json:"decision,omitempty"`      // Fused verdict text (e.g., "Likely Phishing")
	Confidence        string `json:"confidence,omitempty"`    // Categorical label (e.g., "High")
	WebsiteAccessible bool   `json:"website_accessible"`      // Whether the service could load the site
	AnalysisComplete  bool   `json:"analysis_complete"`       // False when only part of the analysis ran
	Note              string `json:"note,omitempty"`          // Optional remark from the service
	WebsiteError      string `json:"website_error,omitempty"` // Why the site could not be loaded
}

// Failure is the user-facing message shown instead of an Outcome
type Failure struct {
	Message string `json:"message"`
}

// PredictRequest is the JSON body sent to the predict endpoint
type PredictRequest struct {
	URL string `json:"url"`
}

// PredictResponse is the JSON body the predict endpoint returns on success
type PredictResponse struct {
	WebcodePrediction *int    `json:"webcode_prediction"`
	URLPrediction     *int    `json:"url_prediction"`
	FinalDecision     *string `json:"final_decision"`
	Confidence        *string `json:"confidence"`
	WebsiteAccessible bool    `json:"website_accessible"`
	AnalysisComplete  bool    `json:"analysis_complete"`
	Note              *string `json:"note"`
	WebsiteError      *string `json:"website_error"`
}

// ErrorResponse is the optional JSON body the predict endpoint returns on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// Outcome maps the wire response onto an Outcome
func (r PredictResponse) Outcome() *Outcome {
	return &Outcome{
		Webcode:           r.WebcodePrediction,
		URL:               r.URLPrediction,
		Decision:          deref(r.FinalDecision),
		Confidence:        deref(r.Confidence),
		WebsiteAccessible: r.WebsiteAccessible,
		AnalysisComplete:  r.AnalysisComplete,
		Note:              deref(r.Note),
		WebsiteError:      deref(r.WebsiteError),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

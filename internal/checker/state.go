// Package checker holds the URL checker view state and the transitions that
// change it. A State is owned by one goroutine; asynchronous work (clipboard
// reads, requests) runs elsewhere and reports back through Session methods.
package checker

import "github.com/ppiankov/phishcheck/internal/model"

// State is everything the view renders
type State struct {
	Query   model.Query
	Loading bool
	Outcome *model.Outcome
	Failure *model.Failure
}

// begin starts a submission: loading on, previous result and failure gone
func (s *State) begin() {
	s.Loading = true
	s.Outcome = nil
	s.Failure = nil
}

func (s *State) release() {
	s.Loading = false
}

func (s *State) fail(e *Error) {
	s.Failure = &model.Failure{Message: e.Message}
}

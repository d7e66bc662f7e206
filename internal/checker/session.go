package checker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/phishcheck/internal/clipboard"
	"github.com/ppiankov/phishcheck/internal/model"
	"github.com/ppiankov/phishcheck/internal/util"
)

// ErrBusy is returned by Start while a check is in flight
var ErrBusy = errors.New("a check is already running")

// Predictor submits a URL to the detection service
type Predictor interface {
	Predict(ctx context.Context, rawURL string) (*model.Outcome, error)
}

// PredictorFunc adapts a function to Predictor
type PredictorFunc func(ctx context.Context, rawURL string) (*model.Outcome, error)

// Predict calls f
func (f PredictorFunc) Predict(ctx context.Context, rawURL string) (*model.Outcome, error) {
	return f(ctx, rawURL)
}

// Session owns the view state and drives it through edit, paste and submit.
//
// Methods that touch state (Edit, ApplyPaste, Start, Finish, Submit, Paste)
// must be called from the goroutine that owns the session. ReadClipboard and
// Request do not touch state and may run anywhere.
type Session struct {
	state     State
	predictor Predictor
	clipboard clipboard.Reader
	logger    *zap.Logger
}

// NewSession creates a session with an empty query
func NewSession(p Predictor, clip clipboard.Reader, logger *zap.Logger) *Session {
	if clip == nil {
		clip = clipboard.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		predictor: p,
		clipboard: clip,
		logger:    logger,
	}
}

// State returns a snapshot of the current state
func (s *Session) State() State {
	return s.state
}

// Edit replaces the query URL
func (s *Session) Edit(url string) {
	s.state.Query.URL = url
}

// ReadClipboard reads the clipboard text
func (s *Session) ReadClipboard() (string, error) {
	return s.clipboard.ReadText()
}

// ApplyPaste stores the result of a clipboard read. A failed read becomes
// the clipboard failure and leaves loading and any outcome alone.
func (s *Session) ApplyPaste(text string, err error) {
	if err != nil {
		s.logger.Warn("clipboard read failed", zap.Error(err))
		s.state.fail(clipboardError(err))
		return
	}
	s.state.Query.URL = text
}

// Paste reads the clipboard and applies the result
func (s *Session) Paste() {
	s.ApplyPaste(s.ReadClipboard())
}

// Start checks the query like a URL form field would and, when it passes,
// begins a submission. It returns the URL to request. A rejected query
// leaves the state untouched.
func (s *Session) Start() (string, error) {
	if s.state.Loading {
		return "", ErrBusy
	}
	url, err := util.NormalizeURLInput(s.state.Query.URL)
	if err != nil {
		return "", err
	}
	s.state.Query.URL = url
	s.state.begin()
	return url, nil
}

// Request asks the predictor about url. A panicking predictor is reported
// as an error so the submission can still be finished.
func (s *Session) Request(ctx context.Context, url string) (outcome *model.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = nil
			err = fmt.Errorf("predict panicked: %v", r)
		}
	}()

	outcome, err = s.predictor.Predict(ctx, url)
	if err == nil && outcome == nil {
		err = errors.New("predict returned no outcome")
	}
	return outcome, err
}

// Finish settles the submission started for url. Loading is always cleared.
func (s *Session) Finish(url string, outcome *model.Outcome, err error) {
	defer s.state.release()

	if err != nil {
		s.logger.Error("url check failed", zap.String("url", url), zap.Error(err))
		s.state.fail(requestError(err))
		return
	}
	s.logger.Info("url checked",
		zap.String("url", url),
		zap.String("decision", outcome.Decision),
		zap.String("confidence", outcome.Confidence))
	s.state.Outcome = outcome
}

// Submit runs a complete submission synchronously. The returned error is
// only about the query itself; request failures end up in the state.
func (s *Session) Submit(ctx context.Context) error {
	url, err := s.Start()
	if err != nil {
		return err
	}

	var (
		outcome *model.Outcome
		reqErr  error
	)
	defer func() { s.Finish(url, outcome, reqErr) }()

	outcome, reqErr = s.Request(ctx, url)
	return nil
}

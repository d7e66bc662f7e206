package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/phishcheck/internal/clipboard"
	"github.com/ppiankov/phishcheck/internal/model"
)

func useClipboard(t *testing.T, r clipboard.Reader) {
	t.Helper()
	prev := clipboardReader
	clipboardReader = r
	t.Cleanup(func() { clipboardReader = prev })
}

// execute runs the root command with args against a clean environment
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("PHISHCHECK_LOG_FILE", "off")
	pasteURL, outJSON, verbose = false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func predictServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict-url" {
			http.NotFound(w, r)
			return
		}
		var req model.PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const phishingBody = `{
	"webcode_prediction": 1,
	"url_prediction": 0,
	"final_decision": "Likely Phishing",
	"confidence": "High",
	"website_accessible": true,
	"analysis_complete": true
}`

func TestCheck_PrintsResultCard(t *testing.T) {
	srv := predictServer(t, http.StatusOK, phishingBody)

	out, err := execute(t, "check", "http://example.com", "--endpoint", srv.URL, "--color", "never")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Analysis Results",
		"High Confidence",
		"Likely Phishing",
		"Accessible",
		"Complete",
		"Phishing",
		"Safe",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Analysis Failed") {
		t.Errorf("unexpected failure panel:\n%s", out)
	}
}

func TestCheck_JSONOutput(t *testing.T) {
	srv := predictServer(t, http.StatusOK, phishingBody)

	out, err := execute(t, "check", "http://example.com", "--endpoint", srv.URL, "--json")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}

	var got model.Outcome
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not an outcome: %v\n%s", err, out)
	}
	if got.Decision != "Likely Phishing" || got.Confidence != "High" {
		t.Errorf("unexpected outcome: %+v", got)
	}
	if got.Webcode == nil || *got.Webcode != 1 || got.URL == nil || *got.URL != 0 {
		t.Errorf("unexpected predictions: webcode=%v url=%v", got.Webcode, got.URL)
	}
}

func TestCheck_ServerFailure(t *testing.T) {
	srv := predictServer(t, http.StatusBadGateway, `{"error":"Site unreachable"}`)

	out, err := execute(t, "check", "http://example.com", "--endpoint", srv.URL, "--color", "never")
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v", err)
	}
	if !strings.Contains(out, "Analysis Failed") || !strings.Contains(out, "Failed to check the URL. Please try again.") {
		t.Errorf("expected failure panel:\n%s", out)
	}
	if strings.Contains(out, "Site unreachable") {
		t.Errorf("server message leaked into output:\n%s", out)
	}
}

func TestCheck_JSONFailure(t *testing.T) {
	srv := predictServer(t, http.StatusBadGateway, `{"error":"Site unreachable"}`)

	out, err := execute(t, "check", "http://example.com", "--endpoint", srv.URL, "--json")
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v", err)
	}

	var got model.Failure
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not a failure: %v\n%s", err, out)
	}
	if got.Message != "Failed to check the URL. Please try again." {
		t.Errorf("unexpected message: %q", got.Message)
	}
}

func TestCheck_PasteUsesClipboard(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.PredictRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotURL = req.URL
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(phishingBody))
	}))
	t.Cleanup(srv.Close)
	useClipboard(t, clipboard.Func(func() (string, error) { return "https://login.example.net/verify", nil }))

	out, err := execute(t, "check", "--paste", "--endpoint", srv.URL, "--color", "never")
	if err != nil {
		t.Fatalf("check --paste failed: %v\n%s", err, out)
	}
	if gotURL != "https://login.example.net/verify" {
		t.Errorf("service received %q", gotURL)
	}
	if !strings.Contains(out, "Likely Phishing") {
		t.Errorf("expected result card:\n%s", out)
	}
}

func TestCheck_PasteClipboardFailure(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)
	useClipboard(t, clipboard.Func(func() (string, error) { return "", clipboard.ErrUnsupported }))

	out, err := execute(t, "check", "--paste", "--endpoint", srv.URL, "--color", "never")
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v", err)
	}
	if !strings.Contains(out, "Analysis Failed") || !strings.Contains(out, "Failed to read clipboard.") {
		t.Errorf("expected clipboard failure panel:\n%s", out)
	}
	if called {
		t.Error("no request should be sent when the clipboard cannot be read")
	}
}

func TestCheck_InvalidURL(t *testing.T) {
	out, err := execute(t, "check", "example.com", "--endpoint", "http://127.0.0.1:1")
	if err == nil {
		t.Fatalf("expected an error for a URL without scheme, output:\n%s", out)
	}
	if errors.Is(err, ErrCheckFailed) {
		t.Error("input errors should not be reported as failed checks")
	}
	if !strings.Contains(err.Error(), "invalid url") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheck_RequiresExactlyOneSource(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "neither", args: []string{"check"}},
		{name: "both", args: []string{"check", "http://example.com", "--paste"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), "either a URL argument or --paste") {
				t.Errorf("expected source error, got %v", err)
			}
		})
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".phishcheck", "config.yaml")

	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	for _, want := range []string{"base_url: http://localhost:3000", "path: /predict-url", "color: auto"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config missing %q:\n%s", want, data)
		}
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("expected an error when the config already exists")
	}
}

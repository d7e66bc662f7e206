package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ppiankov/phishcheck/internal/checker"
	"github.com/ppiankov/phishcheck/internal/render"
)

// ErrCheckFailed is returned when a check ends with a failure panel.
// The panel has already been printed, so callers should only set the exit code.
var ErrCheckFailed = errors.New("check failed")

var (
	pasteURL bool
	outJSON  bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [url]",
	Short: "Check a single URL and print the verdict",
	Long: `Check sends one URL to the detection service and prints the result card:
- Final decision and confidence
- Website accessibility and any error the service hit loading it
- Analysis status (complete or partial)
- Content analysis and URL analysis predictions

Example:
  phishcheck check http://example.com
  phishcheck check --paste
  phishcheck check https://example.com --json
  phishcheck check https://example.com --endpoint https://detector.internal:3000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&pasteURL, "paste", false, "take the URL from the clipboard")
	checkCmd.Flags().BoolVar(&outJSON, "json", false, "print the outcome (or {\"message\": ...} on failure) as JSON instead of the card")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if pasteURL == (len(args) == 1) {
		return fmt.Errorf("give either a URL argument or --paste")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.HTTP.Timeout > 0 && verbose {
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", cfg.HTTP.Timeout)
	}

	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	if pasteURL {
		session.Paste()
		if session.State().Failure != nil {
			return writeResult(cmd.OutOrStdout(), session.State(), cfg.Output.Color)
		}
	} else {
		session.Edit(args[0])
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Checking %s via %s\n", session.State().Query.URL, cfg.EndpointURL())
	}

	if err := session.Submit(ctx); err != nil {
		return fmt.Errorf("invalid url %q: %w", session.State().Query.URL, err)
	}

	st := session.State()
	if verbose && st.Outcome != nil {
		fmt.Fprintf(os.Stderr, "✓ Decision: %s\n", st.Outcome.Decision)
	}
	return writeResult(cmd.OutOrStdout(), st, cfg.Output.Color)
}

// writeResult prints the state as JSON with --json, as the rendered view otherwise
func writeResult(w io.Writer, st checker.State, colorMode string) error {
	if outJSON {
		return printJSON(w, st)
	}
	return printView(w, st, colorMode)
}

// printJSON encodes the Outcome, or the Failure when the check failed
func printJSON(w io.Writer, st checker.State) error {
	var v any = st.Outcome
	if st.Failure != nil {
		v = st.Failure
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if st.Failure != nil {
		return ErrCheckFailed
	}
	return nil
}

// printView prints the rendered state and reports ErrCheckFailed for failures
func printView(w io.Writer, st checker.State, colorMode string) error {
	styles := render.NewStyles(render.NewRenderer(w, colorMode))
	if _, err := fmt.Fprintln(w, render.Text(render.Build(st), styles)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if st.Failure != nil {
		return ErrCheckFailed
	}
	return nil
}

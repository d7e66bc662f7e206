package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ppiankov/phishcheck/internal/render"
	"github.com/ppiankov/phishcheck/internal/tui"
)

// uiCmd represents the interactive view
var uiCmd = &cobra.Command{
	Use:   "ui [url]",
	Short: "Open the interactive URL checker",
	Long: `Open a full-screen checker: type or paste a URL, press enter, read the verdict.

Keys:
  enter    check the URL in the field
  ctrl+v   replace the field with the clipboard contents
  esc      quit

Diagnostics go to the log file (log.file), never to the screen.

Example:
  phishcheck ui
  phishcheck ui https://example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		session.Edit(args[0])
	}

	styles := render.NewStyles(render.NewRenderer(os.Stdout, cfg.Output.Color))
	logger.Info("interactive view started")
	return tui.Run(ctx, session, styles)
}

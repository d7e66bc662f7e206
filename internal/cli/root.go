package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/phishcheck/internal/checker"
	"github.com/ppiankov/phishcheck/internal/clipboard"
	"github.com/ppiankov/phishcheck/internal/model"
	"github.com/ppiankov/phishcheck/internal/pipeline"
	"github.com/ppiankov/phishcheck/internal/util"
)

var (
	cfgFile  string
	verbose  bool
	endpoint string
	timeout  time.Duration
	color    string
)

// clipboardReader is where `check --paste` and the interactive view read from
var clipboardReader clipboard.Reader = clipboard.System{}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phishcheck",
	Short: "phishcheck - ask a phishing-detection service about a URL",
	Long: `phishcheck sends a URL to a phishing-detection service and shows its verdict:
the final decision and confidence, whether the site was reachable, and the
separate content-based and URL-based predictions.

All analysis happens in the service; phishcheck only asks and displays.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("phishcheck v" + model.Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.phishcheck/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "detection service base URL (overrides endpoint.base_url)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout, 0 for none (overrides http.timeout)")
	rootCmd.PersistentFlags().StringVar(&color, "color", "", "color output: auto, always, never (overrides output.color)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("endpoint.base_url", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("http.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("output.color", rootCmd.PersistentFlags().Lookup("color"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in .env, the config file and ENV variables
func initConfig() {
	// .env in the working directory; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) && verbose {
		fmt.Fprintf(os.Stderr, "Ignoring .env: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".phishcheck"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match PHISHCHECK_* (dots become underscores)
	viper.SetEnvPrefix("PHISHCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration for a command run
func loadConfig() (*model.Config, error) {
	cfg, err := model.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newSession wires the HTTP client, clipboard and logger into a checker session
func newSession(cfg *model.Config, logger *zap.Logger) (*checker.Session, error) {
	client, err := pipeline.NewClient(cfg.EndpointURL(), cfg.HTTP, logger)
	if err != nil {
		return nil, err
	}
	return checker.NewSession(client, clipboardReader, logger), nil
}

// newLogger builds the diagnostic logger; verbose runs also log to stderr
func newLogger(cfg *model.Config, mirrorStderr bool) (*zap.Logger, error) {
	logger, err := util.NewLogger(cfg.Log, mirrorStderr)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete phishcheck configuration
type Config struct {
	Endpoint EndpointConfig `yaml:"endpoint" mapstructure:"endpoint"`
	HTTP     HTTPConfig     `yaml:"http" mapstructure:"http"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// EndpointConfig locates the detection service
type EndpointConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"` // Scheme + host (+ optional prefix) of the service
	Path    string `yaml:"path" mapstructure:"path"`         // Prediction route
}

// HTTPConfig tunes the HTTP client talking to the service
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"` // 0 leaves the transport's own behaviour
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// LogConfig controls the diagnostic log
type LogConfig struct {
	File  string `yaml:"file" mapstructure:"file"` // "" = ~/.phishcheck/phishcheck.log, "off" disables
	Level string `yaml:"level" mapstructure:"level"`
}

// OutputConfig controls terminal rendering
type OutputConfig struct {
	Color string `yaml:"color" mapstructure:"color"` // auto, always, never
}

// Version is reported by `phishcheck version` and sent in the User-Agent
const Version = "0.3.1"

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			BaseURL: "http://localhost:3000",
			Path:    "/predict-url",
		},
		HTTP: HTTPConfig{
			Timeout:      0,
			UserAgent:    "phishcheck/" + Version,
			MaxBodyBytes: 1 << 20,
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// EndpointURL joins the base URL and the prediction path
func (c *Config) EndpointURL() string {
	base := strings.TrimRight(c.Endpoint.BaseURL, "/")
	path := c.Endpoint.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// LoadConfig resolves the configuration from v on top of the defaults.
// Every key gets a default so that PHISHCHECK_* environment variables are seen by Unmarshal.
func LoadConfig(v *viper.Viper) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault("endpoint.base_url", def.Endpoint.BaseURL)
	v.SetDefault("endpoint.path", def.Endpoint.Path)
	v.SetDefault("http.timeout", def.HTTP.Timeout)
	v.SetDefault("http.user_agent", def.HTTP.UserAgent)
	v.SetDefault("http.max_body_bytes", def.HTTP.MaxBodyBytes)
	v.SetDefault("http.insecure_tls", def.HTTP.InsecureTLS)
	v.SetDefault("http.http_proxy", def.HTTP.HTTPProxy)
	v.SetDefault("http.https_proxy", def.HTTP.HTTPSProxy)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("output.color", def.Output.Color)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid output.color %q (want auto, always or never)", cfg.Output.Color)
	}
	if cfg.HTTP.MaxBodyBytes <= 0 {
		cfg.HTTP.MaxBodyBytes = def.HTTP.MaxBodyBytes
	}
	return cfg, nil
}

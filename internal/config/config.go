package config

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultOutputDir is used when no output directory is configured.
const DefaultOutputDir = "episodes"

// Config represents the entire application configuration. It is built once
// per invocation and shared read-only by every worker.
type Config struct {
	Feed     FeedConfig     `mapstructure:"feed"`
	Output   OutputConfig   `mapstructure:"output"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Download DownloadConfig `mapstructure:"download"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// FeedConfig identifies the feed to pull.
type FeedConfig struct {
	URL string `mapstructure:"url"`
}

// OutputConfig contains destination settings.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// FilterConfig contains the optional title patterns. Patterns use standard
// regular expression syntax and are matched by search, not full-string
// equality.
type FilterConfig struct {
	Include string `mapstructure:"include"`
	Exclude string `mapstructure:"exclude"`
}

// DownloadConfig contains download pipeline settings.
type DownloadConfig struct {
	// Concurrency bounds in-flight downloads; 0 means unbounded.
	Concurrency int `mapstructure:"concurrency"`
	// MaxRedirects is the redirect hop budget per fetch.
	MaxRedirects int `mapstructure:"max_redirects"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load parses command line arguments, merges them with an optional YAML
// config file and defaults, and validates the result.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("feedgrab", pflag.ContinueOnError)
	configPath := flags.String("config", "", "Path to optional configuration file")
	flags.StringP("feed", "f", "", "URL of the feed to download")
	flags.StringP("dir", "d", DefaultOutputDir, "Directory to store downloaded episodes")
	flags.StringP("include", "i", "", "Regex pattern for episode titles to include")
	flags.StringP("exclude", "e", "", "Regex pattern for episode titles to exclude")
	flags.Int("concurrency", 0, "Maximum concurrent downloads (0 = one per item)")
	flags.Int("max-redirects", 10, "Redirect hops to follow per download")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (json, console)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set defaults
	v.SetDefault("feed.url", "")
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("filter.include", "")
	v.SetDefault("filter.exclude", "")
	v.SetDefault("download.concurrency", 0)
	v.SetDefault("download.max_redirects", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Bind flags; explicit flags take precedence over the config file
	bindings := map[string]string{
		"feed.url":               "feed",
		"output.dir":             "dir",
		"filter.include":         "include",
		"filter.exclude":         "exclude",
		"download.concurrency":   "concurrency",
		"download.max_redirects": "max-redirects",
		"logging.level":          "log-level",
		"logging.format":         "log-format",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url is required")
	}
	u, err := url.Parse(c.Feed.URL)
	if err != nil {
		return fmt.Errorf("invalid feed.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("feed.url must be an http or https URL")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}

	if c.Filter.Include != "" {
		if _, err := regexp.Compile(c.Filter.Include); err != nil {
			return fmt.Errorf("invalid filter.include: %w", err)
		}
	}
	if c.Filter.Exclude != "" {
		if _, err := regexp.Compile(c.Filter.Exclude); err != nil {
			return fmt.Errorf("invalid filter.exclude: %w", err)
		}
	}

	if c.Download.Concurrency < 0 {
		return fmt.Errorf("download.concurrency must not be negative")
	}
	if c.Download.MaxRedirects < 1 {
		return fmt.Errorf("download.max_redirects must be positive")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
		// Valid formats
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Logging.Format)
	}

	return nil
}

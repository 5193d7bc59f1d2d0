package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Fixture discovery
	FixturesPath  string
	PathsToIgnore []string
	Workers       int

	// Rendering
	RepoURL string

	// Server
	ListenAddr string
	Debug      bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers      int
	FixturesPath string
	NameFilter   string
	FailFast     bool
	Addr         string
	URL          string
	Target       string
	Debug        bool
	ReportPath   string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		FixturesPath: DefaultFixturesPath,
		Workers:      DefaultWorkers,
		RepoURL:      DefaultRepoURL,
		ListenAddr:   DefaultListenAddr,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// LoadEnv loads envFile (if it exists) into the process environment and
// applies FIXCHECK_* overrides. Variables already set take precedence over
// the file.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvFixturesPath); v != "" {
		c.FixturesPath = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv(EnvRepoURL); v != "" {
		c.RepoURL = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvWorkers, v)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean, got %q", EnvDebug, v)
		}
		c.Debug = debug
	}
	return nil
}

// ApplyFlags stores flags and lets explicitly set ones override config values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FixturesPath != "" {
		c.FixturesPath = flags.FixturesPath
	}
	if flags.Addr != "" {
		c.ListenAddr = flags.Addr
	}
	if flags.Debug {
		c.Debug = true
	}
}

// GetFixturesPath returns the absolute fixtures directory when it can be resolved
func (c *Config) GetFixturesPath() string {
	if abs, err := filepath.Abs(c.FixturesPath); err == nil {
		return abs
	}
	return c.FixturesPath
}

// GetTargetURL returns the URL terminal commands read the target version
// from: --url as given, or a query built from --target. Empty means no
// target was requested.
func (c *Config) GetTargetURL() string {
	if c.Flags.URL != "" {
		return c.Flags.URL
	}
	if c.Flags.Target != "" {
		return "?" + url.Values{"version": {c.Flags.Target}}.Encode()
	}
	return ""
}

// GetReportPath returns the absolute lint report path, or "" when no report
// was requested
func (c *Config) GetReportPath() string {
	if c.Flags.ReportPath == "" {
		return ""
	}
	if abs, err := filepath.Abs(c.Flags.ReportPath); err == nil {
		return abs
	}
	return c.Flags.ReportPath
}

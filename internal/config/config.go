package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Supabase holds the two required connection parameters for the remote
// store. Env vars win over the config file so keys stay out of dotfiles.
type Supabase struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

type Config struct {
	RefreshTTL   string    `yaml:"refresh_ttl"`
	FetchTimeout string    `yaml:"fetch_timeout"`
	Table        string    `yaml:"table"`
	RowLimit     int       `yaml:"row_limit,omitempty"`
	Supabase     *Supabase `yaml:"supabase,omitempty"`
}

// SupabaseURL returns the resolved project URL (env var or config).
func (c *Config) SupabaseURL() string {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		return v
	}
	if c.Supabase != nil {
		return c.Supabase.URL
	}
	return ""
}

// SupabaseKey returns the resolved access key (env var or config).
func (c *Config) SupabaseKey() string {
	if v := os.Getenv("SUPABASE_KEY"); v != "" {
		return v
	}
	if c.Supabase != nil {
		return c.Supabase.Key
	}
	return ""
}

// HasCredentials reports whether both connection parameters resolved.
func (c *Config) HasCredentials() bool {
	return c.SupabaseURL() != "" && c.SupabaseKey() != ""
}

// ValidateCredentials is the fatal-at-startup check for anything that
// will reach the remote store.
func (c *Config) ValidateCredentials() error {
	u := c.SupabaseURL()
	if u == "" {
		return fmt.Errorf("SUPABASE_URL is not set (env var or supabase.url in config)")
	}
	if c.SupabaseKey() == "" {
		return fmt.Errorf("SUPABASE_KEY is not set (env var or supabase.key in config)")
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid supabase url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("supabase url scheme must be http or https, got %q", parsed.Scheme)
	}
	return nil
}

// TTL is how long one fetched snapshot stays fresh. Fixed for the
// process; the refresh key invalidates, it does not retune.
func (c *Config) TTL() time.Duration {
	d, err := time.ParseDuration(c.RefreshTTL)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// Timeout bounds a single remote fetch.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// TableName returns the remote table to select from.
func (c *Config) TableName() string {
	if c.Table == "" {
		return "articles"
	}
	return c.Table
}

// GetRowLimit caps the table and card views, defaulting to 50.
func (c *Config) GetRowLimit() int {
	if c.RowLimit <= 0 {
		return 50
	}
	return c.RowLimit
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "livepulse", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file, writing the embedded defaults on first
// run. Credentials are NOT validated here — CSV-only sessions never need
// them; callers that construct a store client must call
// ValidateCredentials first.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

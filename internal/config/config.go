// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Playback PlaybackConfig `toml:"playback"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// CatalogConfig describes the catalog space request. Header values are sent
// verbatim; keep tokens and cookies in the environment.
type CatalogConfig struct {
	BaseURL  string            `toml:"base_url"`
	Page     string            `toml:"page"`
	Space    string            `toml:"space"`
	Timeout  time.Duration     `toml:"timeout"`
	Strategy string            `toml:"strategy"` // "last" or "first"
	Query    CatalogQuery      `toml:"query"`
	Headers  map[string]string `toml:"headers"`
}

type CatalogQuery struct {
	ContentID string `toml:"content_id"`
	Mode      string `toml:"mode"`
	Offset    int    `toml:"offset"`
	PageEnum  string `toml:"page_enum"`
	Size      int    `toml:"size"`
	TabName   string `toml:"tab_name"`
}

// Params returns the query as request parameters.
func (q CatalogQuery) Params() map[string]string {
	return map[string]string{
		"content_id": q.ContentID,
		"mode":       q.Mode,
		"offset":     strconv.Itoa(q.Offset),
		"page_enum":  q.PageEnum,
		"size":       strconv.Itoa(q.Size),
		"tabName":    q.TabName,
	}
}

type PlaybackConfig struct {
	ManifestURL   string         `toml:"manifest_url"`
	MIMEType      string         `toml:"mime_type"`
	DRMScheme     string         `toml:"drm_scheme"` // name or system UUID, empty for clear content
	LicenseURL    string         `toml:"license_url"`
	Tracks        string         `toml:"tracks"` // track catalog path or URL
	Codecs        []string       `toml:"codecs"` // decodable codec prefixes, empty for all
	AdaptiveLabel string         `toml:"adaptive_label"`
	Adaptive      AdaptiveConfig `toml:"adaptive"`
}

// AdaptiveConfig bounds the video size when the adaptive entry is selected.
type AdaptiveConfig struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// Load reads, substitutes, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	cfg, err := parse(content)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, leaving
// unresolved variables in place and skipping validation.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	content, _ := substituteEnvVars(string(data))
	return parse(content)
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func parse(content string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = "https://www.hotstar.com"
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = 30 * time.Second
	}
	if c.Catalog.Strategy == "" {
		c.Catalog.Strategy = "last"
	}
	if c.Catalog.Query.Mode == "" {
		c.Catalog.Query.Mode = "default"
	}
	if c.Catalog.Query.Size == 0 {
		c.Catalog.Query.Size = 10
	}
	if c.Playback.MIMEType == "" {
		c.Playback.MIMEType = "application/dash+xml"
	}
	if c.Playback.AdaptiveLabel == "" {
		c.Playback.AdaptiveLabel = "Auto"
	}
	if c.Playback.Adaptive.MaxWidth == 0 && c.Playback.Adaptive.MaxHeight == 0 {
		c.Playback.Adaptive = AdaptiveConfig{MaxWidth: 719, MaxHeight: 479}
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces variable references with environment values.
// Unresolved references are left unchanged and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return result, missing
}

// HeaderValue returns the configured header value, matching the name case-insensitively.
func (c *CatalogConfig) HeaderValue(name string) (string, bool) {
	for k, v := range c.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

package config

import (
	"fmt"
	"net/url"

	"github.com/vmunix/telepathy/internal/player"
	"golang.org/x/text/language"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validStrategies = map[string]bool{
	"last": true, "first": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	// Catalog
	if err := checkURL(c.Catalog.BaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("catalog.base_url: %v", err))
	}
	if c.Catalog.Page == "" {
		errs = append(errs, "catalog.page: required")
	}
	if c.Catalog.Space == "" {
		errs = append(errs, "catalog.space: required")
	}
	if c.Catalog.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("catalog.timeout: must not be negative, got %s", c.Catalog.Timeout))
	}
	if !validStrategies[c.Catalog.Strategy] {
		errs = append(errs, fmt.Sprintf("catalog.strategy: must be one of last, first; got %q", c.Catalog.Strategy))
	}
	if c.Catalog.Query.ContentID == "" {
		errs = append(errs, "catalog.query.content_id: required")
	}
	if c.Catalog.Query.Offset < 0 {
		errs = append(errs, fmt.Sprintf("catalog.query.offset: must not be negative, got %d", c.Catalog.Query.Offset))
	}
	if c.Catalog.Query.Size < 1 {
		errs = append(errs, fmt.Sprintf("catalog.query.size: must be positive, got %d", c.Catalog.Query.Size))
	}
	if v, ok := c.Catalog.HeaderValue("accept-language"); ok {
		if _, _, err := language.ParseAcceptLanguage(v); err != nil {
			errs = append(errs, fmt.Sprintf("catalog.headers.accept-language: %v", err))
		}
	}

	// Playback
	if err := checkURL(c.Playback.ManifestURL); err != nil {
		errs = append(errs, fmt.Sprintf("playback.manifest_url: %v", err))
	}
	if c.Playback.DRMScheme != "" {
		if _, err := player.ParseDRMScheme(c.Playback.DRMScheme); err != nil {
			errs = append(errs, fmt.Sprintf("playback.drm_scheme: %v", err))
		}
		if err := checkURL(c.Playback.LicenseURL); err != nil {
			errs = append(errs, fmt.Sprintf("playback.license_url: %v", err))
		}
	}
	if c.Playback.Tracks == "" {
		errs = append(errs, "playback.tracks: required")
	}
	if c.Playback.Adaptive.MaxWidth < 1 || c.Playback.Adaptive.MaxHeight < 1 {
		errs = append(errs, fmt.Sprintf("playback.adaptive: max_width and max_height must be positive, got %dx%d",
			c.Playback.Adaptive.MaxWidth, c.Playback.Adaptive.MaxHeight))
	}

	return errs
}

func checkURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an http(s) URL, got %q", raw)
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/vmunix/telepathy/internal/catalog"
	"github.com/vmunix/telepathy/internal/config"
	"github.com/vmunix/telepathy/internal/events"
	"github.com/vmunix/telepathy/internal/player"
	"github.com/vmunix/telepathy/internal/player/headless"
	"github.com/vmunix/telepathy/internal/tracks"
)

func newCatalogClient(cfg *config.Config, logger *slog.Logger) (*catalog.Client, error) {
	strategy, err := catalog.ParseStrategy(cfg.Catalog.Strategy)
	if err != nil {
		return nil, err
	}
	return catalog.NewClient(cfg.Catalog.Page, cfg.Catalog.Space,
		catalog.WithBaseURL(cfg.Catalog.BaseURL),
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithHeaders(cfg.Catalog.Headers),
		catalog.WithQuery(cfg.Catalog.Query.Params()),
		catalog.WithStrategy(strategy),
		catalog.WithLogger(logger),
	), nil
}

func mediaItem(p config.PlaybackConfig) (player.MediaItem, error) {
	item := player.MediaItem{URI: p.ManifestURL, MIMEType: p.MIMEType}
	if p.DRMScheme == "" {
		return item, nil
	}
	scheme, err := player.ParseDRMScheme(p.DRMScheme)
	if err != nil {
		return item, fmt.Errorf("drm scheme: %w", err)
	}
	item.DRM = &player.DRMConfig{Scheme: scheme, LicenseURI: p.LicenseURL}
	return item, nil
}

func headlessOptions(cfg *config.Config, logger *slog.Logger) []headless.Option {
	return []headless.Option{
		headless.WithSupportedCodecs(cfg.Playback.Codecs...),
		headless.WithLogger(logger),
	}
}

func newSession(cfg *config.Config, factory player.Factory, bus *events.Bus, logger *slog.Logger) (*player.Session, error) {
	item, err := mediaItem(cfg.Playback)
	if err != nil {
		return nil, err
	}
	projector := tracks.NewProjector(
		tracks.WithAdaptive(tracks.Constraint{
			MaxWidth:  cfg.Playback.Adaptive.MaxWidth,
			MaxHeight: cfg.Playback.Adaptive.MaxHeight,
		}),
		tracks.WithAdaptiveLabel(cfg.Playback.AdaptiveLabel),
		tracks.WithLogger(logger),
	)
	return player.NewSession(factory, item, projector, bus, logger), nil
}

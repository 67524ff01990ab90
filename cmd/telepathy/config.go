package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/telepathy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long:  "Writes an annotated default config (to the per-user path unless given). Secrets are read from the environment when the file is loaded.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config syntax, required fields, and environment variable substitution without starting playback.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var forceInit bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configTestCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, forceInit); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Log:       %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  Catalog:   %s (page %s, space %s, timeout %s, strategy %s)\n",
		cfg.Catalog.BaseURL, cfg.Catalog.Page, cfg.Catalog.Space, cfg.Catalog.Timeout, cfg.Catalog.Strategy)
	fmt.Fprintf(w, "  Content:   %s\n", cfg.Catalog.Query.ContentID)

	// Header names only; values may be secrets.
	names := make([]string, 0, len(cfg.Catalog.Headers))
	for name := range cfg.Catalog.Headers {
		names = append(names, name)
	}
	if len(names) > 0 {
		slices.Sort(names)
		fmt.Fprintf(w, "  Headers:   %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(w, "  Manifest:  %s (%s)\n", cfg.Playback.ManifestURL, cfg.Playback.MIMEType)
	if cfg.Playback.DRMScheme != "" {
		fmt.Fprintf(w, "  DRM:       %s via %s\n", cfg.Playback.DRMScheme, cfg.Playback.LicenseURL)
	}
	fmt.Fprintf(w, "  Tracks:    %s\n", cfg.Playback.Tracks)
	fmt.Fprintf(w, "  Adaptive:  %s, max %dx%d\n",
		cfg.Playback.AdaptiveLabel, cfg.Playback.Adaptive.MaxWidth, cfg.Playback.Adaptive.MaxHeight)
}

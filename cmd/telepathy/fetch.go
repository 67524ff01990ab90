package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vmunix/telepathy/internal/catalog"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Look up the content title and description",
	Long: `Performs one catalog request with the configured page, space, query and
headers and prints the projected title and description.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

type fetchResult struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        int    `json:"code,omitempty"`
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)

	client, err := newCatalogClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	summary, err := client.Fetch(ctx)
	if err != nil {
		if jsonOutput {
			res := fetchResult{Error: err.Error()}
			var catErr *catalog.Error
			if errors.As(err, &catErr) {
				res.Error = catErr.Message
				res.Code = catErr.Code
			}
			_ = printJSON(out, res)
		}
		return fmt.Errorf("fetch: %w", err)
	}

	if jsonOutput {
		return printJSON(out, fetchResult{Title: summary.Title, Description: summary.Description})
	}
	fmt.Fprintf(out, "Title: %s\nDescription: %s\n", summary.Title, summary.Description)
	return nil
}

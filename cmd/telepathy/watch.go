package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vmunix/telepathy/internal/events"
	"github.com/vmunix/telepathy/internal/player/headless"
	"github.com/vmunix/telepathy/internal/screen"
	"golang.org/x/sync/errgroup"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the watch screen",
	Long: `Starts playback of the configured stream and looks up the content
details. Commands are read from standard input:

  <n>      select resolution n from the last list shown
  pause    pause playback
  resume   resume playback (recreates the player after stop)
  stop     release the player, as when the screen is hidden
  start    show the screen again
  quit     exit

End of input quits as well. With --json every output line is a JSON object,
including the catalog.fetched and catalog.failed events.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)

	client, err := newCatalogClient(cfg, logger)
	if err != nil {
		return err
	}

	bus := events.NewBus(logger.With("component", "bus"))
	defer func() { _ = bus.Close() }()

	factory := headless.NewFactory(cfg.Playback.Tracks, headlessOptions(cfg, logger)...)
	session, err := newSession(cfg, factory, bus, logger)
	if err != nil {
		return err
	}

	var renderer screen.Renderer = screen.NewTextRenderer(cmd.OutOrStdout())
	var jsonRenderer *screen.JSONRenderer
	if jsonOutput {
		jsonRenderer = screen.NewJSONRenderer(cmd.OutOrStdout())
		renderer = jsonRenderer
	}
	ctrl := screen.New(session, client, bus, renderer, logger)
	all := bus.SubscribeAll(32)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ctrl.Run(ctx)
	})
	g.Go(func() error {
		return pumpEvents(ctx, all, logger, jsonRenderer)
	})

	// Failures are rendered by the controller; the screen stays open.
	_ = ctrl.OnStart(ctx)
	_ = ctrl.OnResume(ctx)

	lines := readLines(ctx, cmd.InOrStdin())
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					quit()
					return nil
				}
				if handleWatchCommand(ctx, ctrl, line, cmd.ErrOrStderr()) {
					quit()
					return nil
				}
			}
		}
	})

	err = g.Wait()
	ctrl.OnPause()
	if derr := ctrl.OnDestroy(); derr != nil {
		logger.Warn("release player", "error", derr)
	}
	return err
}

// pumpEvents logs every bus event at debug level and, when out is set,
// writes catalog outcomes to it.
func pumpEvents(ctx context.Context, ch <-chan events.Event, logger *slog.Logger, out *screen.JSONRenderer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-ch:
			if !ok {
				return nil
			}
			logger.Debug("event", "type", e.EventType(), "entity", e.EntityType(), "id", e.EntityID())
			if out == nil {
				continue
			}
			switch e.(type) {
			case *events.CatalogFetched, *events.CatalogFailed:
				out.Event(e)
			}
		}
	}
}

// readLines delivers trimmed input lines until r is exhausted or ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// handleWatchCommand applies one input line and reports whether to quit.
func handleWatchCommand(ctx context.Context, ctrl *screen.Controller, line string, errOut io.Writer) bool {
	if n, err := strconv.Atoi(line); err == nil {
		if !ctrl.SelectResolution(n) {
			fmt.Fprintf(errOut, "no resolution %d\n", n)
		}
		return false
	}

	switch strings.ToLower(line) {
	case "p", "pause":
		ctrl.OnPause()
	case "r", "resume":
		_ = ctrl.OnResume(ctx)
	case "stop":
		_ = ctrl.OnStop()
	case "start":
		_ = ctrl.OnStart(ctx)
	case "q", "quit", "exit":
		return true
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n", line)
	}
	return false
}

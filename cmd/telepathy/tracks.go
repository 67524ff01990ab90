package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmunix/telepathy/internal/events"
	"github.com/vmunix/telepathy/internal/player"
	"github.com/vmunix/telepathy/internal/player/headless"
	"github.com/vmunix/telepathy/internal/tracks"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks <catalog>",
	Short: "List the selectable resolutions of a track catalog",
	Long: `Prepares a headless player with the given track catalog (file or URL)
and prints the resolution list. Index 0 is the adaptive entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runTracks,
}

var selectCmd = &cobra.Command{
	Use:   "select <catalog> <index>",
	Short: "Apply a resolution selection and show the resulting constraint",
	Args:  cobra.ExactArgs(2),
	RunE:  runSelect,
}

func init() {
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(selectCmd)
}

// probe is a prepared playback session over a single headless player.
type probe struct {
	session *player.Session
	player  *headless.Player
	bus     *events.Bus
}

func openProbe(ctx context.Context, cmd *cobra.Command, source string) (*probe, error) {
	cfg, err := loadOptionalConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)

	bus := events.NewBus(logger.With("component", "bus"))
	failed := bus.Subscribe(events.EventPlayerFailed, 1)

	hp := headless.New(source, headlessOptions(cfg, logger)...)
	session, err := newSession(cfg, func() (player.Player, error) { return hp, nil }, bus, logger)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	p := &probe{session: session, player: hp, bus: bus}
	if err := session.Start(ctx); err != nil {
		p.close()
		return nil, err
	}

	// Load failures are reported through the listener, not by Start.
	select {
	case e := <-failed:
		p.close()
		if pf, ok := e.(*events.PlayerFailed); ok {
			return nil, errors.New(pf.Message)
		}
		return nil, errors.New("player failed")
	default:
	}
	return p, nil
}

func (p *probe) close() {
	_ = p.session.Release()
	_ = p.bus.Close()
}

type resolutionJSON struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Adaptive bool   `json:"adaptive,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Bitrate  int    `json:"bitrate,omitempty"`
}

func runTracks(cmd *cobra.Command, args []string) error {
	p, err := openProbe(cmd.Context(), cmd, args[0])
	if err != nil {
		return fmt.Errorf("tracks: %w", err)
	}
	defer p.close()

	list := p.session.Resolutions()
	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, map[string]any{
			"generation":  list.Generation,
			"resolutions": resolutionsJSON(list),
		})
	}
	printResolutions(out, list)
	return nil
}

func resolutionsJSON(list tracks.List) []resolutionJSON {
	res := make([]resolutionJSON, 0, list.Len())
	for i, c := range list.Choices {
		res = append(res, resolutionJSON{
			Index:    i,
			Label:    c.Label,
			Adaptive: c.Adaptive,
			Width:    c.Width,
			Height:   c.Height,
			Bitrate:  c.Bitrate,
		})
	}
	return res
}

func printResolutions(w io.Writer, list tracks.List) {
	for i, label := range list.Labels() {
		fmt.Fprintf(w, "  [%d] %s\n", i, label)
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index: %s", args[1])
	}

	p, err := openProbe(cmd.Context(), cmd, args[0])
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	defer p.close()

	list := p.session.Resolutions()
	if !p.session.Select(list.Generation, index) {
		return fmt.Errorf("select: index %d not in list of %d entries", index, list.Len())
	}

	state := p.player.State()
	selected, ok := p.player.Selected()
	out := cmd.OutOrStdout()
	if jsonOutput {
		res := map[string]any{
			"index":      index,
			"label":      list.Choices[index].Label,
			"max_width":  state.MaxWidth,
			"max_height": state.MaxHeight,
		}
		if ok {
			res["selected"] = tracks.Label(selected)
		}
		return printJSON(out, res)
	}

	fmt.Fprintf(out, "Selected:  [%d] %s\n", index, list.Choices[index].Label)
	fmt.Fprintf(out, "Max size:  %dx%d\n", state.MaxWidth, state.MaxHeight)
	if ok {
		fmt.Fprintf(out, "Rendition: %s\n", tracks.Label(selected))
	} else {
		fmt.Fprintln(out, "Rendition: none fits")
	}
	return nil
}

// Package headless implements a player without a video surface. It learns the
// available encodings from a track catalog and tracks playback state.
package headless

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vmunix/telepathy/internal/player"
	"github.com/vmunix/telepathy/internal/tracks"
)

// Sentinel errors.
var (
	ErrReleased    = errors.New("player released")
	ErrNoMediaItem = errors.New("no media item set")
)

// State is a snapshot of the player.
type State struct {
	Prepared      bool
	PlayWhenReady bool
	Playing       bool
	Released      bool
	MaxWidth      int // zero means unconstrained
	MaxHeight     int
}

var _ player.Player = (*Player)(nil)

// Player is a headless player.Player.
type Player struct {
	mu         sync.Mutex
	source     string
	codecs     []string
	httpClient *http.Client
	log        *slog.Logger

	item      *player.MediaItem
	listeners []player.Listener
	groups    []tracks.TrackGroup
	state     State
}

// Option configures a Player.
type Option func(*Player)

// WithHTTPClient sets the client used for http(s) track catalogs.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Player) {
		p.httpClient = hc
	}
}

// WithSupportedCodecs limits decodable codecs to the given prefixes.
// Without it every codec is supported.
func WithSupportedCodecs(prefixes ...string) Option {
	return func(p *Player) {
		p.codecs = prefixes
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(p *Player) {
		p.log = log.With("component", "headless")
	}
}

// New creates a player that reads its tracks from source, a file path or URL.
func New(source string, opts ...Option) *Player {
	p := &Player{source: source}
	for _, opt := range opts {
		opt(p)
	}
	if p.httpClient == nil {
		p.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return p
}

// NewFactory returns a player.Factory creating headless players.
func NewFactory(source string, opts ...Option) player.Factory {
	return func() (player.Player, error) {
		return New(source, opts...), nil
	}
}

func (p *Player) supports(codec string) bool {
	if len(p.codecs) == 0 {
		return true
	}
	codec = strings.ToLower(codec)
	for _, prefix := range p.codecs {
		if strings.HasPrefix(codec, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

func (p *Player) SetMediaItem(item player.MediaItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.item = &item
	p.state.Prepared = false
}

// Prepare loads the track catalog and reports its groups. A catalog that
// cannot be loaded is reported to listeners; the player stays usable.
func (p *Player) Prepare(ctx context.Context) error {
	p.mu.Lock()
	if p.state.Released {
		p.mu.Unlock()
		return ErrReleased
	}
	if p.item == nil {
		p.mu.Unlock()
		return ErrNoMediaItem
	}
	uri := p.item.URI
	p.mu.Unlock()

	catalog, err := loadTrackCatalog(ctx, p.httpClient, p.source)
	if err != nil {
		p.notifyError(err)
		return nil
	}
	groups := catalog.Groups(p.supports)

	p.mu.Lock()
	if p.state.Released {
		p.mu.Unlock()
		return ErrReleased
	}
	p.groups = groups
	p.state.Prepared = true
	p.state.Playing = p.state.PlayWhenReady
	listeners := append([]player.Listener(nil), p.listeners...)
	p.mu.Unlock()

	if p.log != nil {
		p.log.Debug("prepared", "uri", uri, "groups", len(groups))
	}
	for _, l := range listeners {
		l.OnTracksChanged(groups)
	}
	return nil
}

func (p *Player) notifyError(err error) {
	p.mu.Lock()
	listeners := append([]player.Listener(nil), p.listeners...)
	p.mu.Unlock()

	if p.log != nil {
		p.log.Debug("playback error", "error", err)
	}
	for _, l := range listeners {
		l.OnPlayerError(err)
	}
}

func (p *Player) SetPlayWhenReady(play bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.PlayWhenReady = play
	p.state.Playing = play && p.state.Prepared && !p.state.Released
}

func (p *Player) Play() {
	p.SetPlayWhenReady(true)
}

func (p *Player) Pause() {
	p.SetPlayWhenReady(false)
}

// Release stops playback and drops listeners. Later calls are no-ops.
func (p *Player) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Released = true
	p.state.Playing = false
	p.listeners = nil
	return nil
}

func (p *Player) SetMaxVideoSize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.MaxWidth = width
	p.state.MaxHeight = height
	if p.log != nil {
		p.log.Debug("max video size", "width", width, "height", height)
	}
}

func (p *Player) AddListener(l player.Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Released {
		return
	}
	p.listeners = append(p.listeners, l)
}

// State returns a snapshot of the player state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Selected returns the video format the player would render: the highest
// bitrate supported format within the max size constraint.
func (p *Player) Selected() (tracks.Format, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var best tracks.Format
	found := false
	for _, g := range p.groups {
		if g.Type != tracks.TypeVideo || !g.Supported {
			continue
		}
		for _, f := range g.Formats {
			if !f.Supported || !p.fits(f) {
				continue
			}
			if !found || f.Bitrate > best.Bitrate {
				best = f
				found = true
			}
		}
	}
	return best, found
}

func (p *Player) fits(f tracks.Format) bool {
	if p.state.MaxWidth > 0 && f.Width > p.state.MaxWidth {
		return false
	}
	if p.state.MaxHeight > 0 && f.Height > p.state.MaxHeight {
		return false
	}
	return true
}

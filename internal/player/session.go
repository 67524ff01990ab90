package player

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/vmunix/telepathy/internal/events"
	"github.com/vmunix/telepathy/internal/tracks"
)

// Session owns at most one player. The player is created on Start and
// dropped on Release, and created again on the next Start or Resume.
type Session struct {
	mu        sync.Mutex
	factory   Factory
	item      MediaItem
	player    Player
	listener  *sessionListener
	projector *tracks.Projector
	bus       *events.Bus
	log       *slog.Logger
	created   int64
}

// NewSession creates a session. The projector receives every track change
// and forwards selections to the active player.
func NewSession(factory Factory, item MediaItem, projector *tracks.Projector, bus *events.Bus, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		factory:   factory,
		item:      item,
		projector: projector,
		bus:       bus,
		log:       log.With("component", "session"),
	}
}

// Start creates and prepares the player if none exists and starts playback.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		return nil
	}

	p, err := s.factory()
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	s.created++

	l := &sessionListener{session: s, id: s.created}
	p.AddListener(l)
	s.projector.SetTarget(p)

	p.SetMediaItem(s.item)
	if err := p.Prepare(ctx); err != nil {
		l.released.Store(true)
		s.projector.SetTarget(nil)
		s.projector.Reset()
		if rerr := p.Release(); rerr != nil {
			s.log.Warn("release after failed prepare", "error", rerr)
		}
		return fmt.Errorf("prepare player: %w", err)
	}
	p.SetPlayWhenReady(true)

	s.player = p
	s.listener = l
	s.log.Info("player started", "uri", s.item.URI, "instance", s.created)
	return nil
}

// Resume starts a player if none exists, otherwise resumes playback.
func (s *Session) Resume(ctx context.Context) error {
	s.mu.Lock()
	p := s.player
	s.mu.Unlock()

	if p == nil {
		return s.Start(ctx)
	}
	p.Play()
	return nil
}

// Pause pauses playback if a player exists.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		s.player.Pause()
	}
}

// Release releases the player and empties the slot. Releasing an empty
// session is a no-op.
func (s *Session) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player == nil {
		return nil
	}

	p := s.player
	s.listener.released.Store(true)
	s.projector.SetTarget(nil)
	s.projector.Reset()
	s.player = nil
	s.listener = nil

	if err := p.Release(); err != nil {
		return fmt.Errorf("release player: %w", err)
	}
	s.log.Info("player released")
	return nil
}

// Active reports whether a player currently exists.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil
}

// Resolutions returns the current resolution list.
func (s *Session) Resolutions() tracks.List {
	return s.projector.Current()
}

// Select applies the resolution at index of the list with the given generation.
func (s *Session) Select(generation uint64, index int) bool {
	return s.projector.Select(generation, index)
}

// sessionListener forwards notifications of one player instance until it is released.
type sessionListener struct {
	session  *Session
	id       int64
	released atomic.Bool
}

func (l *sessionListener) OnTracksChanged(groups []tracks.TrackGroup) {
	if l.released.Load() {
		return
	}
	s := l.session
	list := s.projector.Update(groups)
	s.log.Debug("tracks changed", "instance", l.id, "groups", len(groups), "choices", list.Len())

	e := &events.TracksChanged{
		BaseEvent: events.NewBaseEvent(events.EventTracksChanged, events.EntitySession, int64(list.Generation)),
		Labels:    list.Labels(),
	}
	if err := s.bus.Publish(context.Background(), e); err != nil {
		s.log.Warn("publish tracks changed", "error", err)
	}
}

func (l *sessionListener) OnPlayerError(err error) {
	if l.released.Load() {
		return
	}
	s := l.session
	s.log.Error("player error", "instance", l.id, "error", err)

	e := &events.PlayerFailed{
		BaseEvent: events.NewBaseEvent(events.EventPlayerFailed, events.EntitySession, l.id),
		Message:   err.Error(),
	}
	if perr := s.bus.Publish(context.Background(), e); perr != nil {
		s.log.Warn("publish player error", "error", perr)
	}
}

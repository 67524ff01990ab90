// Package screen drives the watch screen through its lifecycle: playback is
// started while the screen is visible and a catalog lookup is issued on every
// start, its result rendered only if the screen is still showing.
package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vmunix/telepathy/internal/catalog"
	"github.com/vmunix/telepathy/internal/events"
	"github.com/vmunix/telepathy/internal/tracks"
	"golang.org/x/sync/errgroup"
)

// Session is the playback side of the screen.
type Session interface {
	Start(ctx context.Context) error
	Resume(ctx context.Context) error
	Pause()
	Release() error
	Resolutions() tracks.List
	Select(generation uint64, index int) bool
}

// Controller binds a playback session and a catalog fetcher to the screen lifecycle.
type Controller struct {
	session  Session
	fetcher  catalog.Fetcher
	bus      *events.Bus
	renderer Renderer
	log      *slog.Logger

	tracksCh <-chan events.Event
	errorsCh <-chan events.Event

	mu        sync.Mutex
	visible   bool
	destroyed bool
	seq       int64 // incremented on every start; results of older starts are dropped
	shown     uint64
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a controller. It subscribes to player events right away so
// nothing published before Run is lost.
func New(session Session, fetcher catalog.Fetcher, bus *events.Bus, renderer Renderer, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		session:  session,
		fetcher:  fetcher,
		bus:      bus,
		renderer: renderer,
		log:      log.With("component", "screen"),
		tracksCh: bus.Subscribe(events.EventTracksChanged, 16),
		errorsCh: bus.Subscribe(events.EventPlayerFailed, 16),
	}
}

// OnStart makes the screen visible, starts playback and launches a catalog lookup.
// A playback failure is shown and returned; the lookup runs regardless.
func (c *Controller) OnStart(ctx context.Context) error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return errors.New("screen destroyed")
	}
	c.visible = true
	c.seq++
	seq := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go c.fetch(fetchCtx, seq)

	if err := c.session.Start(ctx); err != nil {
		c.log.Error("start playback", "error", err)
		c.renderer.Notify("Player Error: " + err.Error())
		return err
	}
	return nil
}

// OnResume resumes playback, creating the player if it was released.
func (c *Controller) OnResume(ctx context.Context) error {
	if err := c.session.Resume(ctx); err != nil {
		c.log.Error("resume playback", "error", err)
		c.renderer.Notify("Player Error: " + err.Error())
		return err
	}
	return nil
}

// OnPause pauses playback.
func (c *Controller) OnPause() {
	c.session.Pause()
}

// OnStop hides the screen: the player is released and a pending lookup is
// cancelled and its result dropped.
func (c *Controller) OnStop() error {
	c.mu.Lock()
	c.visible = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	return c.session.Release()
}

// OnDestroy stops the screen, waits for pending lookups and drops the event
// subscriptions. Later calls only release the session again.
func (c *Controller) OnDestroy() error {
	err := c.OnStop()

	c.mu.Lock()
	first := !c.destroyed
	c.destroyed = true
	c.mu.Unlock()

	c.wg.Wait()
	if first {
		c.bus.Unsubscribe(c.tracksCh)
		c.bus.Unsubscribe(c.errorsCh)
	}
	return err
}

// SelectResolution applies the entry at index of the last list shown.
func (c *Controller) SelectResolution(index int) bool {
	c.mu.Lock()
	gen := c.shown
	c.mu.Unlock()
	return c.session.Select(gen, index)
}

// Run renders player events until ctx is done or the controller is destroyed.
func (c *Controller) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-c.tracksCh:
				if !ok {
					return nil
				}
				if tc, ok := e.(*events.TracksChanged); ok {
					c.showResolutions(tc)
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-c.errorsCh:
				if !ok {
					return nil
				}
				if pf, ok := e.(*events.PlayerFailed); ok {
					c.renderer.Notify("Player Error: " + pf.Message)
				}
			}
		}
	})

	return g.Wait()
}

func (c *Controller) showResolutions(tc *events.TracksChanged) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shown = uint64(tc.EntityID())
	c.renderer.ShowResolutions(tc.Labels)
}

func (c *Controller) fetch(ctx context.Context, seq int64) {
	defer c.wg.Done()

	summary, err := c.fetcher.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.visible || seq != c.seq {
		c.log.Debug("discarding catalog result", "seq", seq, "error", err)
		return
	}

	if err != nil {
		msg := err.Error()
		code := 0
		var catErr *catalog.Error
		if errors.As(err, &catErr) {
			msg = catErr.Message
			code = catErr.Code
		}
		c.log.Warn("catalog lookup failed", "error", err)
		c.renderer.ShowContent("Error: " + msg)
		c.renderer.Notify("Error: " + msg)
		c.publish(&events.CatalogFailed{
			BaseEvent: events.NewBaseEvent(events.EventCatalogFailed, events.EntityCatalog, seq),
			Message:   msg,
			Code:      code,
		})
		return
	}

	c.renderer.ShowContent(fmt.Sprintf("Title: %s\nDescription: %s", summary.Title, summary.Description))
	c.publish(&events.CatalogFetched{
		BaseEvent:   events.NewBaseEvent(events.EventCatalogFetched, events.EntityCatalog, seq),
		Title:       summary.Title,
		Description: summary.Description,
	})
}

func (c *Controller) publish(e events.Event) {
	if err := c.bus.Publish(context.Background(), e); err != nil {
		c.log.Warn("publish event", "type", e.EventType(), "error", err)
	}
}

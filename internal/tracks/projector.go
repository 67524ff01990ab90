package tracks

import (
	"log/slog"
	"sync"
)

// ConstraintSetter receives the constraint chosen by a selection.
type ConstraintSetter interface {
	SetMaxVideoSize(width, height int)
}

// Projector keeps the current resolution list and applies selections against it.
type Projector struct {
	mu       sync.Mutex
	list     List
	gen      uint64
	target   ConstraintSetter
	adaptive Constraint
	label    string
	log      *slog.Logger
}

// ProjectorOption configures a Projector.
type ProjectorOption func(*Projector)

// WithAdaptive sets the constraint applied when the adaptive entry is selected.
func WithAdaptive(c Constraint) ProjectorOption {
	return func(p *Projector) {
		p.adaptive = c
	}
}

// WithAdaptiveLabel sets the label of the adaptive entry.
func WithAdaptiveLabel(label string) ProjectorOption {
	return func(p *Projector) {
		if label != "" {
			p.label = label
		}
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) ProjectorOption {
	return func(p *Projector) {
		p.log = log.With("component", "tracks")
	}
}

// NewProjector creates a Projector with an empty list.
func NewProjector(opts ...ProjectorOption) *Projector {
	p := &Projector{
		adaptive: SDConstraint,
		label:    DefaultAdaptiveLabel,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.list = BuildLabeled(nil, p.label)
	return p
}

// SetTarget sets the receiver of applied constraints. A nil target disables Select.
func (p *Projector) SetTarget(target ConstraintSetter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.target = target
}

// Update rebuilds the list for a new track set and returns it.
func (p *Projector) Update(groups []TrackGroup) List {
	list := BuildLabeled(groups, p.label)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	list.Generation = p.gen
	p.list = list

	if p.log != nil {
		p.log.Debug("resolution list rebuilt", "generation", list.Generation, "choices", list.Len())
	}
	return list
}

// Reset drops the current list for an adaptive-only one under a new
// generation, so selections made against earlier lists are ignored.
func (p *Projector) Reset() List {
	return p.Update(nil)
}

// Current returns the list selections are applied against.
func (p *Projector) Current() List {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.list
}

// Select applies the choice at index of the list with the given generation.
// Stale generations, out-of-range indices and a missing target are ignored.
func (p *Projector) Select(generation uint64, index int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.target == nil || generation != p.list.Generation {
		if p.log != nil {
			p.log.Debug("ignoring selection", "generation", generation, "current", p.list.Generation, "index", index)
		}
		return false
	}

	c, ok := p.list.Resolve(index, p.adaptive)
	if !ok {
		return false
	}
	p.target.SetMaxVideoSize(c.MaxWidth, c.MaxHeight)

	if p.log != nil {
		p.log.Debug("applied selection", "index", index, "max_width", c.MaxWidth, "max_height", c.MaxHeight)
	}
	return true
}

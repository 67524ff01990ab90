package tracks

// DefaultAdaptiveLabel is the label of the adaptive entry.
const DefaultAdaptiveLabel = "Auto"

// List is an ordered set of choices. Index 0 is always the adaptive entry.
type List struct {
	Generation uint64
	Choices    []Choice
}

// Build projects groups into a List labelled with DefaultAdaptiveLabel.
func Build(groups []TrackGroup) List {
	return BuildLabeled(groups, DefaultAdaptiveLabel)
}

// BuildLabeled projects groups into a List. Only supported video groups and their
// supported formats are listed, in enumeration order.
func BuildLabeled(groups []TrackGroup, adaptiveLabel string) List {
	choices := []Choice{{Label: adaptiveLabel, Adaptive: true, Group: -1, Format: -1}}
	for gi, g := range groups {
		if g.Type != TypeVideo || !g.Supported {
			continue
		}
		for fi, f := range g.Formats {
			if !f.Supported {
				continue
			}
			choices = append(choices, Choice{
				Label:   Label(f),
				Width:   f.Width,
				Height:  f.Height,
				Bitrate: f.Bitrate,
				Group:   gi,
				Format:  fi,
			})
		}
	}
	return List{Choices: choices}
}

// Len returns the number of choices including the adaptive entry.
func (l List) Len() int {
	return len(l.Choices)
}

// Labels returns the display strings in order.
func (l List) Labels() []string {
	labels := make([]string, len(l.Choices))
	for i, c := range l.Choices {
		labels[i] = c.Label
	}
	return labels
}

// Resolve maps a list index to the constraint the player should apply.
// Index 0 yields the adaptive policy; out-of-range indices report false.
func (l List) Resolve(index int, adaptive Constraint) (Constraint, bool) {
	if index < 0 || index >= len(l.Choices) {
		return Constraint{}, false
	}
	c := l.Choices[index]
	if c.Adaptive {
		return adaptive, true
	}
	return Constraint{MaxWidth: c.Width, MaxHeight: c.Height}, true
}

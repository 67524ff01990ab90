package catalog

import "fmt"

// NotAvailable replaces a title or description that is present but null.
const NotAvailable = "N/A"

// Strategy selects which tray item provides the summary.
type Strategy int

const (
	// LastResolvable lets every item with content info overwrite the summary,
	// so the last one wins.
	LastResolvable Strategy = iota
	// FirstTitled stops at the first item whose title is not NotAvailable.
	FirstTitled
)

func (s Strategy) String() string {
	switch s {
	case LastResolvable:
		return "last"
	case FirstTitled:
		return "first"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "last" or "first". The empty string means LastResolvable.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "last":
		return LastResolvable, nil
	case "first":
		return FirstTitled, nil
	default:
		return LastResolvable, fmt.Errorf("unknown strategy %q", s)
	}
}

// Summarize walks the tray items in order and projects the summary.
// With no resolvable item both fields are empty.
func Summarize(r *Response, strategy Strategy) Summary {
	var s Summary
	for _, item := range r.Items() {
		info := item.ContentInfo()
		if info == nil {
			continue
		}
		s.Title = orNotAvailable(info.Title)
		s.Description = orNotAvailable(info.Description)
		if strategy == FirstTitled && s.Title != NotAvailable {
			break
		}
	}
	return s
}

func orNotAvailable(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return *s
}

// Package tracks projects a player's track groups into a list of selectable resolutions.
package tracks

import "fmt"

// TrackType is the media type carried by a TrackGroup.
type TrackType int

const (
	TypeUnknown TrackType = iota
	TypeVideo
	TypeAudio
	TypeText
)

func (t TrackType) String() string {
	switch t {
	case TypeVideo:
		return "video"
	case TypeAudio:
		return "audio"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// Format is one encoding inside a TrackGroup.
type Format struct {
	Width     int
	Height    int
	Bitrate   int // bits per second
	Supported bool
}

// TrackGroup is a set of alternative encodings of one media type.
type TrackGroup struct {
	Type      TrackType
	Supported bool
	Formats   []Format
}

// Constraint limits the video size the player may pick.
type Constraint struct {
	MaxWidth  int
	MaxHeight int
}

// SDConstraint keeps adaptive playback at or below standard definition.
var SDConstraint = Constraint{MaxWidth: 719, MaxHeight: 479}

// Choice is one entry of a resolution list.
type Choice struct {
	Label    string
	Adaptive bool

	Width   int
	Height  int
	Bitrate int

	// Group and Format index into the track groups the list was built from.
	Group  int
	Format int
}

// Label renders a format as "1920x1080 (4500 kbps)".
func Label(f Format) string {
	return fmt.Sprintf("%dx%d (%d kbps)", f.Width, f.Height, f.Bitrate/1000)
}

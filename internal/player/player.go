// Package player manages the lifetime of a media player bound to a visible screen.
package player

//go:generate mockgen -source=player.go -destination=mocks/player.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vmunix/telepathy/internal/tracks"
)

// Container MIME hints.
const (
	MIMEDash            = "application/dash+xml"
	MIMEHLS             = "application/x-mpegURL"
	MIMESmoothStreaming = "application/vnd.ms-sstr+xml"
)

// DRM system identifiers.
var (
	WidevineScheme  = uuid.MustParse("edef8ba9-79d6-4ace-a3c8-27dcd51d21ed")
	PlayReadyScheme = uuid.MustParse("9a04f079-9840-4286-ab92-e65be0885f95")
	ClearKeyScheme  = uuid.MustParse("e2719d58-a985-b3c9-781a-b030af78d30e")
)

// ParseDRMScheme accepts a well-known scheme name or a system UUID.
func ParseDRMScheme(s string) (uuid.UUID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "widevine":
		return WidevineScheme, nil
	case "playready":
		return PlayReadyScheme, nil
	case "clearkey":
		return ClearKeyScheme, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid DRM scheme %q: %w", s, err)
	}
	return id, nil
}

// DRMConfig describes how the player acquires content keys.
type DRMConfig struct {
	Scheme     uuid.UUID
	LicenseURI string
}

// MediaItem is the source the player is prepared with.
type MediaItem struct {
	URI      string
	MIMEType string
	DRM      *DRMConfig // nil for clear content
}

// Listener receives player notifications.
type Listener interface {
	OnTracksChanged(groups []tracks.TrackGroup)
	OnPlayerError(err error)
}

// Player is the control surface of an external media player.
type Player interface {
	SetMediaItem(item MediaItem)
	Prepare(ctx context.Context) error
	SetPlayWhenReady(play bool)
	Play()
	Pause()
	Release() error
	SetMaxVideoSize(width, height int)
	AddListener(l Listener)
}

// Factory creates a new player instance.
type Factory func() (Player, error)

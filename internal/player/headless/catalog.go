package headless

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmunix/telepathy/internal/tracks"
)

// TrackCatalog lists the encodings a stream offers. Tracks sharing a
// non-zero altGroup are alternatives of each other.
type TrackCatalog struct {
	Version int     `json:"version"`
	Tracks  []Track `json:"tracks"`
}

type Track struct {
	Name            string          `json:"name"`
	Label           string          `json:"label,omitempty"`
	AltGroup        int             `json:"altGroup,omitempty"`
	SelectionParams SelectionParams `json:"selectionParams"`
}

type SelectionParams struct {
	Codec      string `json:"codec"`
	MimeType   string `json:"mimeType"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Framerate  int    `json:"framerate,omitempty"`
	Bitrate    int    `json:"bitrate"`
	Samplerate int    `json:"samplerate,omitempty"`
}

// ParseTrackCatalog decodes a track catalog.
func ParseTrackCatalog(data []byte) (*TrackCatalog, error) {
	var c TrackCatalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode track catalog: %w", err)
	}
	return &c, nil
}

// loadTrackCatalog reads a catalog from an http(s) URL or a file path.
func loadTrackCatalog(ctx context.Context, hc *http.Client, source string) (*TrackCatalog, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read track catalog: %w", err)
		}
		return ParseTrackCatalog(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("track catalog: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read track catalog: %w", err)
	}
	return ParseTrackCatalog(data)
}

func trackType(p SelectionParams) tracks.TrackType {
	mime := strings.ToLower(p.MimeType)
	switch {
	case strings.HasPrefix(mime, "video/"):
		return tracks.TypeVideo
	case strings.HasPrefix(mime, "audio/"):
		return tracks.TypeAudio
	case strings.HasPrefix(mime, "text/"), strings.HasPrefix(mime, "application/ttml"):
		return tracks.TypeText
	}

	codec := strings.ToLower(p.Codec)
	for _, prefix := range []string{"avc1", "avc3", "hvc1", "hev1", "vp8", "vp09", "av01"} {
		if strings.HasPrefix(codec, prefix) {
			return tracks.TypeVideo
		}
	}
	for _, prefix := range []string{"mp4a", "opus", "ac-3", "ec-3", "flac"} {
		if strings.HasPrefix(codec, prefix) {
			return tracks.TypeAudio
		}
	}
	return tracks.TypeUnknown
}

// Groups converts the catalog into track groups in order of first appearance.
// A track without an altGroup forms a group of its own.
func (c *TrackCatalog) Groups(supported func(codec string) bool) []tracks.TrackGroup {
	type key struct {
		typ tracks.TrackType
		alt int
	}
	var groups []tracks.TrackGroup
	index := make(map[key]int)

	for _, t := range c.Tracks {
		p := t.SelectionParams
		typ := trackType(p)
		f := tracks.Format{
			Width:     p.Width,
			Height:    p.Height,
			Bitrate:   p.Bitrate,
			Supported: supported(p.Codec),
		}

		k := key{typ: typ, alt: t.AltGroup}
		if i, ok := index[k]; ok && t.AltGroup != 0 {
			groups[i].Formats = append(groups[i].Formats, f)
			groups[i].Supported = groups[i].Supported || f.Supported
			continue
		}
		if t.AltGroup != 0 {
			index[k] = len(groups)
		}
		groups = append(groups, tracks.TrackGroup{
			Type:      typ,
			Supported: f.Supported,
			Formats:   []tracks.Format{f},
		})
	}
	return groups
}

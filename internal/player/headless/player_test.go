package headless

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/telepathy/internal/player"
	"github.com/vmunix/telepathy/internal/tracks"
)

type recordingListener struct {
	mu     sync.Mutex
	groups [][]tracks.TrackGroup
	errs   []error
}

func (r *recordingListener) OnTracksChanged(groups []tracks.TrackGroup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = append(r.groups, groups)
}

func (r *recordingListener) OnPlayerError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

var testItem = player.MediaItem{URI: "https://example.com/manifest.mpd", MIMEType: player.MIMEDash}

func TestPlayer_PrepareReportsGroups(t *testing.T) {
	p := New("testdata/catalog.json")
	l := &recordingListener{}
	p.AddListener(l)
	p.SetMediaItem(testItem)
	p.SetPlayWhenReady(true)

	require.NoError(t, p.Prepare(context.Background()))

	require.Len(t, l.groups, 1)
	groups := l.groups[0]
	require.Len(t, groups, 3)
	assert.Equal(t, tracks.TypeVideo, groups[0].Type)
	assert.Len(t, groups[0].Formats, 3)
	assert.Equal(t, tracks.TypeVideo, groups[1].Type)
	assert.Len(t, groups[1].Formats, 1)
	assert.Equal(t, tracks.TypeAudio, groups[2].Type)

	state := p.State()
	assert.True(t, state.Prepared)
	assert.True(t, state.Playing)
}

func TestPlayer_SupportedCodecs(t *testing.T) {
	p := New("testdata/catalog.json", WithSupportedCodecs("avc1", "mp4a"))
	l := &recordingListener{}
	p.AddListener(l)
	p.SetMediaItem(testItem)

	require.NoError(t, p.Prepare(context.Background()))

	groups := l.groups[0]
	assert.True(t, groups[0].Supported)
	assert.False(t, groups[1].Supported, "hevc group is not decodable")

	list := tracks.Build(groups)
	assert.Equal(t, 4, list.Len())
}

func TestPlayer_PrepareFromURL(t *testing.T) {
	data, err := os.ReadFile("testdata/catalog.json")
	require.NoError(t, err)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer server.Close()

	p := New(server.URL+"/catalog.json", WithHTTPClient(nil))
	l := &recordingListener{}
	p.AddListener(l)
	p.SetMediaItem(testItem)

	require.NoError(t, p.Prepare(context.Background()))
	require.Len(t, l.groups, 1)
	assert.Len(t, l.groups[0], 3)
}

func TestPlayer_PrepareErrorGoesToListener(t *testing.T) {
	p := New("testdata/missing.json")
	l := &recordingListener{}
	p.AddListener(l)
	p.SetMediaItem(testItem)

	require.NoError(t, p.Prepare(context.Background()))
	require.Len(t, l.errs, 1)
	assert.Contains(t, l.errs[0].Error(), "read track catalog")
	assert.Empty(t, l.groups)
}

func TestPlayer_PrepareWithoutMediaItem(t *testing.T) {
	p := New("testdata/catalog.json")
	assert.ErrorIs(t, p.Prepare(context.Background()), ErrNoMediaItem)
}

func TestPlayer_PrepareAfterRelease(t *testing.T) {
	p := New("testdata/catalog.json")
	p.SetMediaItem(testItem)
	require.NoError(t, p.Release())
	require.NoError(t, p.Release())

	assert.ErrorIs(t, p.Prepare(context.Background()), ErrReleased)
	assert.True(t, p.State().Released)
}

func TestPlayer_PlayPause(t *testing.T) {
	p := New("testdata/catalog.json")
	p.SetMediaItem(testItem)
	require.NoError(t, p.Prepare(context.Background()))

	p.Play()
	assert.True(t, p.State().Playing)
	p.Pause()
	assert.False(t, p.State().Playing)
	assert.False(t, p.State().PlayWhenReady)
}

func TestPlayer_SelectedHonorsMaxSize(t *testing.T) {
	p := New("testdata/catalog.json")
	p.SetMediaItem(testItem)
	require.NoError(t, p.Prepare(context.Background()))

	f, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, 3840, f.Width, "unconstrained picks the highest bitrate")

	p.SetMaxVideoSize(1280, 720)
	f, ok = p.Selected()
	require.True(t, ok)
	assert.Equal(t, 1280, f.Width)

	p.SetMaxVideoSize(tracks.SDConstraint.MaxWidth, tracks.SDConstraint.MaxHeight)
	f, ok = p.Selected()
	require.True(t, ok)
	assert.Equal(t, 640, f.Width)

	p.SetMaxVideoSize(100, 100)
	_, ok = p.Selected()
	assert.False(t, ok)
}

func TestParseTrackCatalog_Invalid(t *testing.T) {
	_, err := ParseTrackCatalog([]byte(`{"tracks":`))
	assert.Error(t, err)
}

func TestTrackType_FromCodec(t *testing.T) {
	assert.Equal(t, tracks.TypeVideo, trackType(SelectionParams{Codec: "av01.0.08M.08"}))
	assert.Equal(t, tracks.TypeAudio, trackType(SelectionParams{Codec: "opus"}))
	assert.Equal(t, tracks.TypeText, trackType(SelectionParams{MimeType: "text/vtt"}))
	assert.Equal(t, tracks.TypeUnknown, trackType(SelectionParams{Codec: "wvtt"}))
}

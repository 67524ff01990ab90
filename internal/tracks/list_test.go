package tracks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func videoGroup(formats ...Format) TrackGroup {
	return TrackGroup{Type: TypeVideo, Supported: true, Formats: formats}
}

func format(w, h, bitrate int) Format {
	return Format{Width: w, Height: h, Bitrate: bitrate, Supported: true}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "1920x1080 (4500 kbps)", Label(format(1920, 1080, 4500000)))
	assert.Equal(t, "426x240 (0 kbps)", Label(format(426, 240, 999)), "bitrate uses integer division")
}

func TestBuild_Empty(t *testing.T) {
	list := Build(nil)

	require.Equal(t, 1, list.Len())
	assert.True(t, list.Choices[0].Adaptive)
	assert.Equal(t, DefaultAdaptiveLabel, list.Choices[0].Label)
}

func TestBuild_CountsEveryPair(t *testing.T) {
	tests := []struct {
		name   string
		groups []TrackGroup
		want   int
	}{
		{"single group", []TrackGroup{videoGroup(format(640, 360, 800000), format(1280, 720, 2400000))}, 2},
		{"uneven groups", []TrackGroup{
			videoGroup(format(640, 360, 800000)),
			videoGroup(format(1280, 720, 2400000), format(1920, 1080, 4800000), format(3840, 2160, 16000000)),
		}, 4},
		{"empty group", []TrackGroup{videoGroup(), videoGroup(format(640, 360, 800000))}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Build(tt.groups)
			assert.Equal(t, tt.want+1, list.Len())
			assert.True(t, list.Choices[0].Adaptive, "entry 0 is always adaptive")
			for _, c := range list.Choices[1:] {
				assert.False(t, c.Adaptive)
			}
		})
	}
}

func TestBuild_Filters(t *testing.T) {
	groups := []TrackGroup{
		{Type: TypeAudio, Supported: true, Formats: []Format{format(0, 0, 128000)}},
		{Type: TypeVideo, Supported: false, Formats: []Format{format(3840, 2160, 16000000)}},
		videoGroup(
			format(640, 360, 800000),
			Format{Width: 1920, Height: 1080, Bitrate: 4800000, Supported: false},
			format(1280, 720, 2400000),
		),
		{Type: TypeText, Supported: true},
	}

	list := Build(groups)

	assert.Equal(t, []string{"Auto", "640x360 (800 kbps)", "1280x720 (2400 kbps)"}, list.Labels())
	assert.Equal(t, 2, list.Choices[1].Group)
	assert.Equal(t, 0, list.Choices[1].Format)
	assert.Equal(t, 2, list.Choices[2].Group)
	assert.Equal(t, 2, list.Choices[2].Format, "back-reference skips the unsupported format")
}

func TestBuildLabeled(t *testing.T) {
	list := BuildLabeled([]TrackGroup{videoGroup(format(640, 360, 800000))}, "default resolution")
	assert.Equal(t, "default resolution", list.Choices[0].Label)
}

func TestList_Resolve(t *testing.T) {
	list := Build([]TrackGroup{
		videoGroup(format(640, 360, 800000)),
		videoGroup(format(1280, 720, 2400000), format(1920, 1080, 4800000)),
	})
	adaptive := Constraint{MaxWidth: 719, MaxHeight: 479}

	c, ok := list.Resolve(0, adaptive)
	require.True(t, ok)
	assert.Equal(t, adaptive, c)

	// Uneven groups resolve through back-references
	c, ok = list.Resolve(3, adaptive)
	require.True(t, ok)
	assert.Equal(t, Constraint{MaxWidth: 1920, MaxHeight: 1080}, c)

	c, ok = list.Resolve(2, adaptive)
	require.True(t, ok)
	assert.Equal(t, Constraint{MaxWidth: 1280, MaxHeight: 720}, c)

	_, ok = list.Resolve(4, adaptive)
	assert.False(t, ok)
	_, ok = list.Resolve(-1, adaptive)
	assert.False(t, ok)
}

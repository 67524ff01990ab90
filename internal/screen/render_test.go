package screen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmunix/telepathy/internal/events"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	r.ShowContent("Title: A\nDescription: B")
	r.ShowResolutions([]string{"Auto", "640x360 (800 kbps)"})
	r.Notify("Error: Request failed")

	want := "Title: A\nDescription: B\n" +
		"Resolutions:\n  [0] Auto\n  [1] 640x360 (800 kbps)\n" +
		"! Error: Request failed\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	r.ShowContent("Title: A")
	r.ShowResolutions([]string{"Auto"})
	r.Notify("oops")

	want := `{"type":"content","text":"Title: A"}` + "\n" +
		`{"type":"resolutions","labels":["Auto"]}` + "\n" +
		`{"type":"notification","message":"oops"}` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONRenderer_Event(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	r.Event(&events.CatalogFailed{
		BaseEvent: events.NewBaseEvent(events.EventCatalogFailed, events.EntityCatalog, 1),
		Message:   "Request failed",
		Code:      404,
	})

	line := buf.String()
	assert.Contains(t, line, `"type":"catalog.failed"`)
	assert.Contains(t, line, `"message":"Request failed"`)
	assert.Contains(t, line, `"code":404`)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

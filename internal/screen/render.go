package screen

import (
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-json"
	"github.com/vmunix/telepathy/internal/events"
)

// Renderer displays screen output.
type Renderer interface {
	ShowContent(text string)
	ShowResolutions(labels []string)
	Notify(message string)
}

// TextRenderer writes plain text lines.
type TextRenderer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextRenderer creates a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) ShowContent(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, text)
}

func (r *TextRenderer) ShowResolutions(labels []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, "Resolutions:")
	for i, label := range labels {
		fmt.Fprintf(r.w, "  [%d] %s\n", i, label)
	}
}

func (r *TextRenderer) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "! %s\n", message)
}

// JSONRenderer writes one JSON object per line.
type JSONRenderer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

type jsonLine struct {
	Type    string   `json:"type"`
	Text    string   `json:"text,omitempty"`
	Labels  []string `json:"labels,omitempty"`
	Message string   `json:"message,omitempty"`
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) write(line jsonLine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.enc.Encode(line)
}

// Event writes a bus event as its own line.
func (r *JSONRenderer) Event(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.enc.Encode(e)
}

func (r *JSONRenderer) ShowContent(text string) {
	r.write(jsonLine{Type: "content", Text: text})
}

func (r *JSONRenderer) ShowResolutions(labels []string) {
	r.write(jsonLine{Type: "resolutions", Labels: labels})
}

func (r *JSONRenderer) Notify(message string) {
	r.write(jsonLine{Type: "notification", Message: message})
}

// Package catalog fetches the related-content tray of a title and projects its summary.
package catalog

// Response is the catalog space response. Every link is optional: a missing
// object decodes as nil and unknown fields are ignored.
type Response struct {
	Success *Success `json:"success"`
}

type Success struct {
	Space *Space `json:"space"`
}

type Space struct {
	WidgetWrappers []WidgetWrapper `json:"widget_wrappers"`
}

type WidgetWrapper struct {
	Widget *TrayWidget `json:"widget"`
}

// TrayWidget is the scrollable tray holding the related titles.
type TrayWidget struct {
	Data *TrayData `json:"data"`
}

type TrayData struct {
	Items []TrayItem `json:"items"`
}

type TrayItem struct {
	VerticalContentPoster *VerticalContentPoster `json:"vertical_content_poster"`
}

type VerticalContentPoster struct {
	Data *PosterData `json:"data"`
}

type PosterData struct {
	ExpandedContentPoster *ExpandedContentPoster `json:"expanded_content_poster"`
}

type ExpandedContentPoster struct {
	ContentInfo *ContentInfo `json:"content_info"`
}

// ContentInfo holds the text of one tray item. Null fields stay nil.
type ContentInfo struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Items returns the items of the first widget wrapper, or nil if any link is absent.
func (r *Response) Items() []TrayItem {
	if r == nil || r.Success == nil || r.Success.Space == nil {
		return nil
	}
	wrappers := r.Success.Space.WidgetWrappers
	if len(wrappers) == 0 {
		return nil
	}
	w := wrappers[0].Widget
	if w == nil || w.Data == nil {
		return nil
	}
	return w.Data.Items
}

// ContentInfo returns the item's content info, or nil if any link is absent.
func (i TrayItem) ContentInfo() *ContentInfo {
	p := i.VerticalContentPoster
	if p == nil || p.Data == nil || p.Data.ExpandedContentPoster == nil {
		return nil
	}
	return p.Data.ExpandedContentPoster.ContentInfo
}

// Summary is the title and description shown for the content.
type Summary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

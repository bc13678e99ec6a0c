package models

import "time"

// Geometry is the window position and size in screen pixels
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Label is the rendered state of one metric label
type Label struct {
	Kind  MetricKind    `json:"-"`
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Text  string        `json:"text"`
	Color string        `json:"color"`
	Tier  *SeverityTier `json:"tier,omitempty"` // nil for rates and placeholders
}

// Frame is everything a surface needs to draw the widget once
type Frame struct {
	Header        string    `json:"header"`
	Theme         Theme     `json:"theme"`
	Palette       Palette   `json:"palette"`
	ToggleCaption string    `json:"toggle_caption"`
	Labels        []Label   `json:"labels"`
	Window        Geometry  `json:"window"`
	InTray        bool      `json:"in_tray"`
	TrayMenu      []string  `json:"tray_menu,omitempty"`
	RenderedAt    time.Time `json:"rendered_at"`
}

// Label returns the label bound to kind
func (f Frame) Label(kind MetricKind) (Label, bool) {
	for _, l := range f.Labels {
		if l.Kind == kind {
			return l, true
		}
	}
	return Label{}, false
}

package services

import (
	"log"

	"deskgauge/internal/models"
)

// EventType names a user action on the widget
type EventType string

const (
	EventPress       EventType = "press"
	EventDrag        EventType = "drag"
	EventRelease     EventType = "release"
	EventToggleTheme EventType = "toggle_theme"
	EventMinimize    EventType = "minimize"
	EventRestore     EventType = "restore"
	EventClose       EventType = "close" // close control, may minimize to tray
	EventExit        EventType = "exit"  // tray "Exit", always terminates
)

// ShellEvent is a user action delivered to the display loop. X and Y are
// screen coordinates of the pointer for press and drag.
type ShellEvent struct {
	Type EventType `json:"type"`
	X    int       `json:"x"`
	Y    int       `json:"y"`
}

// TrayMenu is the context menu shown while the widget sits in the tray
var TrayMenu = []string{"Toggle Theme", "Exit"}

// Shell is the window state of the widget: placement, drag tracking, theme
// and tray visibility. It is owned by the display loop goroutine.
type Shell struct {
	geometry    models.Geometry
	theme       models.Theme
	inTray      bool
	trayOnClose bool

	dragging bool
	pointerX int
	pointerY int
}

func NewShell(geometry models.Geometry, theme models.Theme, trayOnClose bool) *Shell {
	return &Shell{
		geometry:    geometry,
		theme:       theme,
		trayOnClose: trayOnClose,
	}
}

func (s *Shell) Geometry() models.Geometry { return s.geometry }
func (s *Shell) Theme() models.Theme       { return s.theme }
func (s *Shell) InTray() bool              { return s.inTray }

// Press starts a drag at the pointer position
func (s *Shell) Press(x, y int) {
	s.dragging = true
	s.pointerX = x
	s.pointerY = y
}

// Drag moves the window by the pointer delta since the last press or drag
// event. Without a preceding press it does nothing.
func (s *Shell) Drag(x, y int) models.Geometry {
	if !s.dragging {
		return s.geometry
	}
	s.geometry.X += x - s.pointerX
	s.geometry.Y += y - s.pointerY
	s.pointerX = x
	s.pointerY = y
	return s.geometry
}

// Release ends the drag
func (s *Shell) Release() {
	s.dragging = false
}

// ToggleTheme swaps dark and light and returns the new theme
func (s *Shell) ToggleTheme() models.Theme {
	s.theme = s.theme.Toggled()
	return s.theme
}

func (s *Shell) MinimizeToTray() {
	s.inTray = true
	s.dragging = false
}

func (s *Shell) Restore() {
	s.inTray = false
}

// Close handles the close control. With tray-on-close the window is hidden
// instead and Close reports false; otherwise it reports that the widget
// should exit.
func (s *Shell) Close() bool {
	if s.trayOnClose && !s.inTray {
		s.MinimizeToTray()
		return false
	}
	return true
}

// Apply dispatches an event. It reports whether the frame must be redrawn
// and whether the widget should exit.
func (s *Shell) Apply(ev ShellEvent) (redraw, exit bool) {
	switch ev.Type {
	case EventPress:
		s.Press(ev.X, ev.Y)
		return false, false
	case EventDrag:
		before := s.geometry
		return s.Drag(ev.X, ev.Y) != before, false
	case EventRelease:
		s.Release()
		return false, false
	case EventToggleTheme:
		theme := s.ToggleTheme()
		log.Printf("[TRAY] Theme switched to %s", theme)
		return true, false
	case EventMinimize:
		s.MinimizeToTray()
		return true, false
	case EventRestore:
		s.Restore()
		return true, false
	case EventClose:
		if s.Close() {
			return false, true
		}
		log.Printf("[TRAY] Window minimized to tray")
		return true, false
	case EventExit:
		return false, true
	default:
		log.Printf("[LOOP] Unknown event type: %s", ev.Type)
		return false, false
	}
}

package services

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"deskgauge/internal/models"

	"github.com/charmbracelet/lipgloss"
)

const clearScreen = "\033[H\033[2J"

// TerminalSurface draws the widget as a bordered block on a terminal
type TerminalSurface struct {
	mu    sync.Mutex
	out   io.Writer
	clear bool
}

// NewTerminalSurface writes frames to out, clearing the screen before each
// frame when clear is set
func NewTerminalSurface(out io.Writer, clear bool) *TerminalSurface {
	return &TerminalSurface{out: out, clear: clear}
}

func (t *TerminalSurface) Render(frame models.Frame) {
	view := RenderTerminalFrame(frame)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.clear {
		view = clearScreen + view
	}
	if _, err := fmt.Fprintln(t.out, view); err != nil {
		log.Printf("[TERM] Write error: %v", err)
	}
}

// RenderTerminalFrame returns the styled text for a frame
func RenderTerminalFrame(frame models.Frame) string {
	palette := frame.Palette
	accent := lipgloss.Color(palette.Accent)
	text := lipgloss.Color(palette.Text)
	background := lipgloss.Color(palette.Background)

	if frame.InTray {
		icon := lipgloss.NewStyle().Foreground(accent).Render("●")
		menu := lipgloss.NewStyle().Foreground(text).Render("[" + strings.Join(frame.TrayMenu, "] [") + "]")
		return icon + " " + frame.Header + "  " + menu
	}

	headerStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(text).Width(10)
	captionStyle := lipgloss.NewStyle().Foreground(text).Faint(true)

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			headerStyle.Render(frame.Header), "  ", captionStyle.Render("[t]"+frame.ToggleCaption+"[q] ×")),
		"",
	}
	for _, label := range frame.Labels {
		value := lipgloss.NewStyle().Foreground(lipgloss.Color(label.Color)).Bold(true).Render(label.Text)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, nameStyle.Render(label.Name+":"), value))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Background(background).
		Padding(0, 1)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

var terminalCommands = map[string]EventType{
	"t": EventToggleTheme,
	"m": EventMinimize,
	"r": EventRestore,
	"c": EventClose,
	"q": EventExit,
}

// ReadTerminalCommands forwards single-letter commands from r to the sink
// until r is exhausted or the sink stops accepting events.
func ReadTerminalCommands(r io.Reader, sink EventSink) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if cmd == "" {
			continue
		}
		eventType, ok := terminalCommands[cmd]
		if !ok {
			log.Printf("[TERM] Unknown command %q (t=theme m=tray r=restore c=close q=exit)", cmd)
			continue
		}
		if !sink.Send(ShellEvent{Type: eventType}) {
			return nil
		}
	}
	return scanner.Err()
}

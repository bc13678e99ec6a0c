package models

import (
	"fmt"
	"strings"
)

// Theme is the widget color scheme
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// Palette is the fixed set of colors applied to every element
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	Danger     string `json:"danger"`
}

var palettes = map[Theme]Palette{
	ThemeDark: {
		Background: "#2d2d2d",
		Text:       "#ffffff",
		Accent:     "#4CAF50",
		Danger:     "#DC3545",
	},
	ThemeLight: {
		Background: "#f5f6f7",
		Text:       "#333333",
		Accent:     "#4CAF50",
		Danger:     "#DC3545",
	},
}

// ParseTheme parses "dark" or "light"
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme %q", s)
	}
}

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Palette returns the colors of the theme
func (t Theme) Palette() Palette {
	return palettes[t]
}

// Toggled returns the other theme
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleCaption is the text of the theme button, naming the theme it switches to
func (t Theme) ToggleCaption() string {
	if t == ThemeDark {
		return " Day "
	}
	return " Night "
}

func (t *Theme) UnmarshalText(text []byte) error {
	theme, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = theme
	return nil
}

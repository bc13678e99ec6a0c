package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates parses the widget page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}

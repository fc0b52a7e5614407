// Package manual embeds the player's manual and renders it for the terminal.
package manual

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Style names accepted by Render.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

//go:embed manual.md
var source string

// Source returns the raw markdown.
func Source() string { return source }

// Render formats the manual for a terminal of the given width.
func Render(width int, style string) (string, error) {
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "", StyleAuto:
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("manual: create renderer: %w", err)
	}
	out, err := r.Render(source)
	if err != nil {
		return "", fmt.Errorf("manual: render: %w", err)
	}
	return out, nil
}

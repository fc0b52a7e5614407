package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/robotfindskitten/internal/game"
)

var (
	statusStyle  = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	creditStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	heartStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
)

// glyphPainter renders glyphs, caching one style per palette index.
type glyphPainter struct {
	color  bool
	robot  lipgloss.Style
	styles map[int]lipgloss.Style
}

func newGlyphPainter(color bool, robotColor string) *glyphPainter {
	robot := lipgloss.NewStyle().Bold(true)
	if color && robotColor != "" {
		robot = robot.Foreground(lipgloss.Color(robotColor))
	}
	return &glyphPainter{color: color, robot: robot, styles: map[int]lipgloss.Style{}}
}

func (p *glyphPainter) paint(g game.Glyph) string {
	if !p.color {
		return string(g.Rune)
	}
	style, ok := p.styles[g.Color]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(g.Color)))
		p.styles[g.Color] = style
	}
	return style.Render(string(g.Rune))
}

func (p *glyphPainter) paintRobot() string {
	if !p.color {
		return string(game.RobotRune)
	}
	return p.robot.Render(string(game.RobotRune))
}

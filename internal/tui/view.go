package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/robotfindskitten/internal/game"
)

const titleText = `In this game, you are robot (#). Your job is to find kitten. This task is complicated by the existence of various things which are not kitten. Robot must touch items to determine if they are kitten or not. The game ends when robotfindskitten. Alternatively, you may end the game by hitting the Esc key. See the documentation for more information.`

// View renders the current state to a string.
func (a *App) View() string {
	switch a.state {
	case stateTitle:
		return a.renderTitle()
	case stateManual:
		return a.viewport.View() + "\n" + a.help.View(a.manualKeys)
	case stateTooSmall:
		return a.renderTooSmall()
	}
	if a.session == nil {
		return ""
	}
	rows := []string{a.renderStatusBar()}
	if a.state == stateFound {
		rows = append(rows, a.renderAnimation())
	} else {
		rows = append(rows, a.renderRule())
	}
	rows = append(rows, a.renderField(), a.help.View(a.keys))
	return strings.Join(rows, "\n")
}

func (a *App) renderTitle() string {
	width := a.width
	if width <= 0 || width > 72 {
		width = 72
	}
	body := lipgloss.NewStyle().Width(width).Render(titleText)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("robotfindskitten v"+Version),
		creditStyle.Render("By the illustrious Leonard Richardson (C) 1997, 2000"),
		creditStyle.Render("Written originally for the Nerth Pork robotfindskitten contest"),
		"",
		body,
		"",
		promptStyle.Render("Press any key to start."),
	)
}

func (a *App) renderTooSmall() string {
	width := a.width
	if width <= 0 {
		width = 40
	}
	return warningStyle.Width(width).Render(a.tooSmallMessage())
}

func (a *App) renderStatusBar() string {
	text := a.status
	if text == "" && a.state != stateFound {
		text = "robotfindskitten v" + Version
	}
	return statusStyle.MaxWidth(max(1, a.width)).Render(text)
}

func (a *App) renderRule() string {
	return ruleStyle.Render(strings.Repeat("─", max(0, a.width)))
}

// renderAnimation draws the current found-kitten frame on one line.
func (a *App) renderAnimation() string {
	if len(a.frames) == 0 {
		return ""
	}
	frame := a.frames[min(a.frame, len(a.frames)-1)]
	kitten := a.session.World().Kitten().Glyph
	var b strings.Builder
	for col := 0; col <= frame.Kitten; col++ {
		switch {
		case col == frame.Robot:
			b.WriteString(a.painter.paintRobot())
		case col == frame.Kitten:
			b.WriteString(a.painter.paint(kitten))
		case frame.Heart && col == frame.HeartColumn():
			b.WriteString(heartStyle.Render(string(game.HeartRune)))
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (a *App) renderField() string {
	world := a.session.World()
	width := min(world.Width(), a.width)
	height := world.Height()
	robot := world.Robot()
	lines := make([]string, height)
	var b strings.Builder
	for y := 0; y < height; y++ {
		b.Reset()
		for x := 0; x < width; x++ {
			p := game.Position{X: x, Y: y}
			if p == robot {
				b.WriteString(a.painter.paintRobot())
				continue
			}
			if thing, ok := world.At(p); ok {
				b.WriteString(a.painter.paint(thing.Glyph))
				continue
			}
			b.WriteByte(' ')
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

package game

import "math/rand/v2"

const (
	// RobotRune is the one glyph no other occupant may use.
	RobotRune = '#'

	firstGlyph = '!'
	lastGlyph  = '~'

	// Colors are ANSI palette indices. Black (0) is skipped so nothing
	// disappears on a dark terminal.
	minColor = 1
	maxColor = 15
)

// Glyph is how an occupant appears on screen.
type Glyph struct {
	Rune  rune
	Color int
}

// RobotGlyph is robot's fixed appearance.
var RobotGlyph = Glyph{Rune: RobotRune, Color: 7}

func randomGlyph(rng *rand.Rand) Glyph {
	var r rune
	for {
		r = firstGlyph + rune(rng.IntN(lastGlyph-firstGlyph+1))
		if r != RobotRune {
			break
		}
	}
	return Glyph{Rune: r, Color: minColor + rng.IntN(maxColor-minColor+1)}
}

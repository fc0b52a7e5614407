// Package game holds the robotfindskitten simulation: the board, robot,
// kitten and the non-kitten items (NKIs) scattered around them.
//
// The package is terminal-agnostic. A World only knows cells and
// occupants; the tui package decides how to draw them.
package game

package game

import "time"

const (
	// FrameInterval paces the found-kitten animation.
	FrameInterval = 300 * time.Millisecond
	// AnimationSteps is how many cells robot and kitten each travel.
	AnimationSteps = 4
	// HeartRune is drawn between robot and kitten when they meet.
	HeartRune = '♥'

	FoundMessage = "You found kitten! Way to go, robot!"
)

// Frame is one picture of the found-kitten animation, expressed as
// columns on a single line.
type Frame struct {
	Robot  int
	Kitten int
	Heart  bool
}

// HeartColumn is where the heart sits in a Heart frame.
func (f Frame) HeartColumn() int {
	return (f.Robot + f.Kitten) / 2
}

// FoundAnimation returns the frames for a line of the given width. Robot and
// kitten start AnimationSteps cells either side of the meeting point and
// close in one cell per frame; the last frame adds the heart. Columns are
// clamped to the line, so on narrow lines the approach frames repeat.
func FoundAnimation(width int) []Frame {
	last := max(width-1, 0)
	meet := width / 2
	frame := func(gap int, heart bool) Frame {
		return Frame{
			Robot:  min(max(meet-1-gap, 0), last),
			Kitten: min(meet+1+gap, last),
			Heart:  heart,
		}
	}
	frames := make([]Frame, 0, AnimationSteps+1)
	for step := AnimationSteps; step > 0; step-- {
		frames = append(frames, frame(step, false))
	}
	return append(frames, frame(0, true))
}

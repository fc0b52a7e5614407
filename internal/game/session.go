package game

import (
	"time"

	"github.com/google/uuid"
)

// Result is how a session ended.
type Result string

const (
	ResultPlaying Result = ""
	ResultFound   Result = "found"
	ResultQuit    Result = "quit"
)

// Session tracks one play-through of a World.
type Session struct {
	ID        string
	Seed      int64
	StartedAt time.Time
	EndedAt   time.Time
	Result    Result
	Moves     int
	Touches   int

	world   *World
	touched map[string]struct{}
	now     func() time.Time
}

// NewSession starts the clock on world.
func NewSession(world *World, seed int64) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		Seed:    seed,
		world:   world,
		touched: map[string]struct{}{},
		now:     time.Now,
	}
	s.StartedAt = s.now()
	return s
}

// World returns the board being played.
func (s *Session) World() *World { return s.world }

// Move forwards to World.Move and keeps the counters. Moves made after the
// session finished are ignored.
func (s *Session) Move(dir Direction) Outcome {
	if s.Finished() {
		return Outcome{Kind: OutcomeNone, Robot: s.world.Robot()}
	}
	out := s.world.Move(dir)
	if out.Kind == OutcomeNone {
		return out
	}
	s.Moves++
	switch out.Kind {
	case OutcomeTouched:
		s.Touches++
		s.touched[out.Item.Description] = struct{}{}
	case OutcomeFoundKitten:
		s.finish(ResultFound)
	}
	return out
}

// Quit ends an unfinished session without finding kitten.
func (s *Session) Quit() {
	if s.Finished() {
		return
	}
	s.finish(ResultQuit)
}

// Finished reports whether the session has a result.
func (s *Session) Finished() bool { return s.Result != ResultPlaying }

// DistinctTouched counts the different NKIs robot has examined.
func (s *Session) DistinctTouched() int { return len(s.touched) }

// Duration is the time played so far, or in total once finished.
func (s *Session) Duration() time.Duration {
	if s.Finished() {
		return s.EndedAt.Sub(s.StartedAt)
	}
	return s.now().Sub(s.StartedAt)
}

func (s *Session) finish(result Result) {
	s.Result = result
	s.EndedAt = s.now()
}

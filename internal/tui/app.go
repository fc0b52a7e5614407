// internal/tui/app.go
//
// This is the terminal front end for robotfindskitten.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: the App struct below (screen state plus the game session)
// 2. Update: turns key presses, window sizes and timer ticks into new state
// 3. View: renders the state to a string
//
// The game rules live in internal/game; this package only translates keys
// into moves and moves into pictures.

package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/robotfindskitten/internal/game"
	"github.com/kingrea/robotfindskitten/internal/journal"
	"github.com/kingrea/robotfindskitten/internal/logging"
	"github.com/kingrea/robotfindskitten/internal/manual"
)

// Version is the classic robotfindskitten version string.
const Version = "1.7320508.406"

// appState represents which "screen" we're on
type appState int

const (
	stateTitle    appState = iota // Credits and instructions
	statePlaying                  // The simulation
	stateFound                    // Found-kitten animation
	stateManual                   // Manual viewer
	stateTooSmall                 // Terminal cannot hold the board
)

const (
	// statusRows is the status bar plus the rule beneath it.
	statusRows = 2
	footerRows = 1

	exitDelay   = 2 * time.Second
	saveTimeout = 5 * time.Second

	invalidInputMessage = "Invalid input: Use direction keys or Esc."
)

// Options describes one game.
type Options struct {
	Items      int
	Seed       int64
	ShowTitle  bool
	Color      bool
	RobotColor string
	// ManualStyle is a glamour style name. Resolve it before the program
	// starts; auto-detection inside the alt screen races with key input.
	ManualStyle string
}

// Recorder persists finished sessions.
type Recorder interface {
	Save(ctx context.Context, sess *game.Session) error
}

// ManualRenderer turns the manual into terminal text for a width.
type ManualRenderer func(width int) (string, error)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogger sets the diagnostic logger.
func WithLogger(l *logging.Logger) AppOption {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithJournal sets the event journal.
func WithJournal(j *journal.Journal) AppOption {
	return func(a *App) { a.journal = j }
}

// WithRecorder saves each session when it ends.
func WithRecorder(r Recorder) AppOption {
	return func(a *App) { a.recorder = r }
}

// WithManualRenderer overrides how the manual is rendered.
func WithManualRenderer(r ManualRenderer) AppOption {
	return func(a *App) {
		if r != nil {
			a.manualRenderer = r
		}
	}
}

type animationTickMsg struct{}

type exitMsg struct{}

type sessionSavedMsg struct {
	err error
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state     appState
	prevState appState
	opts      Options
	catalog   game.Catalog
	rng       *rand.Rand
	session   *game.Session
	err       error

	status string
	frames []game.Frame
	frame  int

	// saving is set while a save command is in flight; quitting defers
	// tea.Quit until it reports back.
	saved    bool
	saving   bool
	quitting bool

	// Window size (we get this from bubbletea)
	width  int
	height int

	keys           keyMap
	manualKeys     manualKeyMap
	help           help.Model
	viewport       viewport.Model
	manualRenderer ManualRenderer
	manualWidth    int
	manualText     string
	painter        *glyphPainter

	logger   *logging.Logger
	journal  *journal.Journal
	recorder Recorder
}

// NewApp creates the model. The board is built once the terminal size is
// known and the title screen, if any, is dismissed.
func NewApp(opts Options, catalog game.Catalog, options ...AppOption) *App {
	seed := uint64(opts.Seed)
	a := &App{
		state:      stateTitle,
		opts:       opts,
		catalog:    catalog,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		keys:       defaultKeyMap(),
		manualKeys: defaultManualKeyMap(),
		help:       help.New(),
		viewport:   viewport.New(0, 0),
		logger:     logging.Nop(),
		painter:    newGlyphPainter(opts.Color, opts.RobotColor),
	}
	if !opts.ShowTitle {
		a.state = statePlaying
	}
	a.manualRenderer = func(width int) (string, error) {
		return manual.Render(width, a.opts.ManualStyle)
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Session returns the game in progress or just finished, if one started.
func (a *App) Session() *game.Session { return a.session }

// Err returns the error that stopped the program, if any.
func (a *App) Err() error { return a.err }

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.viewport.Width = msg.Width
		a.viewport.Height = max(1, msg.Height-footerRows)
		switch a.state {
		case stateManual:
			a.refreshManual()
		case stateFound:
			a.frames = game.FoundAnimation(msg.Width)
		}
		return a, a.layout()

	case animationTickMsg:
		return a.advanceAnimation()

	case exitMsg:
		return a, a.exit()

	case sessionSavedMsg:
		a.saving = false
		if msg.err != nil {
			a.logger.Errorf("save session: %v", msg.err)
			if a.journal != nil {
				a.journal.Error("Session %s was not recorded: %v", shortID(a.session.ID), msg.err)
			}
		}
		if a.quitting {
			return a, tea.Quit
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a.quit()
		}
		switch a.state {
		case stateTitle:
			a.state = statePlaying
			return a, a.layout()
		case statePlaying:
			return a.handlePlayingKey(msg)
		case stateFound:
			if a.animationDone() {
				return a, a.exit()
			}
			return a, nil
		case stateManual:
			if key.Matches(msg, a.manualKeys.Back) {
				a.state = a.prevState
				return a, a.layout()
			}
		case stateTooSmall:
			if key.Matches(msg, a.keys.Quit) {
				return a.quit()
			}
			return a, nil
		}
	}

	if a.state == stateManual {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Manual):
		return a.openManual()
	case key.Matches(msg, a.keys.Redraw):
		return a, tea.ClearScreen
	}
	if a.session == nil {
		return a, nil
	}
	if dir, ok := a.keys.direction(msg); ok {
		return a.move(dir)
	}
	a.status = invalidInputMessage
	return a, nil
}

func (a *App) move(dir game.Direction) (tea.Model, tea.Cmd) {
	out := a.session.Move(dir)
	a.logger.Debugf("move %s: %s at %s", dir, out.Kind, out.Robot)
	switch out.Kind {
	case game.OutcomeMoved:
		a.status = ""
	case game.OutcomeTouched:
		a.status = out.Item.Description
		a.logInfo("Robot touched: %s", out.Item.Description)
	case game.OutcomeFoundKitten:
		return a.foundKitten()
	}
	return a, nil
}

func (a *App) foundKitten() (tea.Model, tea.Cmd) {
	a.state = stateFound
	a.status = ""
	a.frames = game.FoundAnimation(a.width)
	a.frame = 0
	a.logInfo("Robot found kitten after %d moves (%d things touched) in %s",
		a.session.Moves, a.session.DistinctTouched(), a.session.Duration().Round(time.Second))
	return a, tea.Batch(a.saveSession(), tickAnimation())
}

func tickAnimation() tea.Cmd {
	return tea.Tick(game.FrameInterval, func(time.Time) tea.Msg { return animationTickMsg{} })
}

func (a *App) advanceAnimation() (tea.Model, tea.Cmd) {
	if a.state != stateFound || a.animationDone() {
		return a, nil
	}
	a.frame++
	if a.animationDone() {
		a.status = game.FoundMessage
		return a, tea.Tick(exitDelay, func(time.Time) tea.Msg { return exitMsg{} })
	}
	return a, tickAnimation()
}

func (a *App) animationDone() bool {
	return len(a.frames) > 0 && a.frame >= len(a.frames)-1
}

// quit ends the session (if one is running) and stops the program once the
// session is saved.
func (a *App) quit() (tea.Model, tea.Cmd) {
	if a.session == nil || a.session.Finished() {
		return a, a.exit()
	}
	a.session.Quit()
	a.logInfo("Robot gave up after %d moves", a.session.Moves)
	if save := a.saveSession(); save != nil {
		return a, tea.Sequence(save, tea.Quit)
	}
	return a, tea.Quit
}

func (a *App) saveSession() tea.Cmd {
	if a.recorder == nil || a.session == nil || a.saved || !a.session.Finished() {
		return nil
	}
	a.saved = true
	a.saving = true
	rec := a.recorder
	sess := a.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return sessionSavedMsg{err: rec.Save(ctx, sess)}
	}
}

// exit stops the program, waiting for an in-flight save first.
func (a *App) exit() tea.Cmd {
	if a.saving {
		a.quitting = true
		return nil
	}
	return tea.Quit
}

// layout builds the world on first use and keeps it sized to the terminal.
func (a *App) layout() tea.Cmd {
	if a.width <= 0 || a.height <= 0 {
		return nil
	}
	if a.state != statePlaying && a.state != stateTooSmall {
		return nil
	}
	width, height := a.fieldSize()
	if a.session == nil {
		world, err := game.NewWorld(game.WorldConfig{Width: width, Height: height, Items: a.opts.Items}, a.catalog, a.rng)
		if err != nil {
			if errors.Is(err, game.ErrBoardTooSmall) {
				a.state = stateTooSmall
				return nil
			}
			a.err = err
			a.logger.Errorf("create world: %v", err)
			return tea.Quit
		}
		a.session = game.NewSession(world, a.opts.Seed)
		a.state = statePlaying
		a.logger.Printf("session %s: %dx%d board, %d items, seed %d", a.session.ID, width, height, a.opts.Items, a.opts.Seed)
		a.logInfo("Session %s started · %d things that are not kitten", shortID(a.session.ID), a.opts.Items)
		return nil
	}
	if err := a.session.World().Resize(width, height); err != nil {
		a.logger.Warnf("resize to %dx%d: %v", width, height, err)
		a.state = stateTooSmall
		return nil
	}
	a.state = statePlaying
	return nil
}

func (a *App) fieldSize() (int, int) {
	return a.width, max(0, a.height-statusRows-footerRows)
}

func (a *App) openManual() (tea.Model, tea.Cmd) {
	a.prevState = a.state
	a.state = stateManual
	a.refreshManual()
	return a, nil
}

func (a *App) refreshManual() {
	width := a.width
	if width <= 0 {
		width = 80
	}
	if a.manualText != "" && a.manualWidth == width {
		return
	}
	text, err := a.manualRenderer(width)
	if err != nil {
		a.logger.Warnf("render manual: %v", err)
		text = manual.Source()
	}
	a.manualText = text
	a.manualWidth = width
	a.viewport.SetContent(text)
	a.viewport.GotoTop()
}

func (a *App) logInfo(format string, args ...any) {
	if a.journal == nil {
		return
	}
	a.journal.Info(format, args...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (a *App) tooSmallMessage() string {
	return fmt.Sprintf("The terminal is too small for robot, kitten and %d other things. Make it bigger or press Esc.", a.opts.Items)
}

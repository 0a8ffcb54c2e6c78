package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables the leaderboard
	Logger  *log.Logger    // Optional; nil discards logs
	Start   config.Difficulty
}

// Model is the Bubble Tea model hosting one snake game.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	cfg       config.Config
	runtime   core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	frame     core.InputFrame
	lastFrame time.Time
	highScore int
	scores    *ScoreboardModel // Non-nil while the scoreboard is open
	quitting  bool
}

// NewModel creates a model with a fresh game. When opts.Start is set the
// first round begins immediately instead of showing the menu.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.FrameRate <= 0 {
		rt.FrameRate = opts.Config.Timing.FrameRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    snake.New(opts.Config, rt.Seed),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		store:   opts.Store,
		logger:  logger,
		cfg:     opts.Config,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		frame:   core.NewInputFrame(),
	}
	m.help.Width = rt.ScreenW

	if m.store != nil {
		if high, err := m.store.HighScore(""); err == nil {
			m.highScore = high
		} else {
			logger.Warn("could not load high score", "error", err)
		}
	}

	if opts.Start != "" {
		m.handleEvents(m.game.Start(opts.Start))
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.handleEvents(m.game.SetFocus(true))
		return m, nil

	case tea.BlurMsg:
		m.handleEvents(m.game.SetFocus(false))
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey records game actions for the next frame. Ctrl+C always exits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores != nil {
		next, cmd := m.scores.Update(msg)
		sb, ok := next.(ScoreboardModel)
		if !ok || sb.IsGoingBack() || sb.IsQuitting() {
			m.scores = nil
			return m, nil
		}
		m.scores = &sb
		return m, cmd
	}

	if key.Matches(msg, m.keys.Scores) && m.game.State().CanStart() {
		sb := NewScoreboardModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		sb.embedded = true
		m.scores = &sb
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.frame)
	return m, nil
}

// handleResize only changes how the board is drawn; the grid is fixed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.scores != nil {
		next, _ := m.scores.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scores = &sb
		}
	}
	return m, nil
}

// handleFrame runs one polling pass: consume the input frame, then let the
// scheduler run whatever fixed steps fell due since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	events, quit := m.game.Input(m.frame)
	events = append(events, m.game.Advance(elapsed)...)
	m.frame.Clear()
	m.handleEvents(events)

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, frameCmd(m.runtime.FrameRate)
}

func (m *Model) handleEvents(events []snake.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case snake.EventRoundStarted:
			m.logger.Info("round started", "round", ev.Round, "difficulty", ev.Difficulty)
		case snake.EventAte:
			m.logger.Debug("food eaten", "round", ev.Round, "cell", ev.Cell, "score", ev.Score, "length", ev.Length)
		case snake.EventPaused:
			m.logger.Debug("paused", "round", ev.Round, "tick", ev.Tick)
		case snake.EventResumed:
			m.logger.Debug("resumed", "round", ev.Round, "tick", ev.Tick)
		case snake.EventGameOver:
			m.logger.Info("game over",
				"round", ev.Round,
				"reason", ev.Reason,
				"score", ev.Score,
				"length", ev.Length,
				"tick", ev.Tick,
			)
			m.saveRound(ev)
		}
	}
}

// saveRound records a finished round on the leaderboard.
func (m *Model) saveRound(ev snake.Event) {
	m.highScore = max(m.highScore, ev.Score)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.RoundResult{
		RoundID:    ev.Round.String(),
		Difficulty: string(ev.Difficulty),
		Score:      ev.Score,
		Length:     ev.Length,
		Reason:     ev.Reason.String(),
	})
	if err != nil && !errors.Is(err, storage.ErrDuplicateRound) {
		m.logger.Warn("could not save round", "round", ev.Round, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	DrawView(m.screen, m.game.View(), HUD{HighScore: m.highScore, AllowQuit: m.cfg.AllowQuit})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(centerText(m.help.View(m.keys), m.runtime.ScreenW))
}

// Game returns the hosted game.
func (m Model) Game() *snake.Game {
	return m.game
}

// IsQuitting returns true if the session is ending.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for one local game session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}

package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game owns the whole simulation: snake, food, score, pause flags, game state
// and the tick scheduler. It is not safe for concurrent use; a host drives it
// from a single goroutine.
type Game struct {
	cfg       config.Config
	grid      Grid
	rng       *rand.Rand
	spawner   *Spawner
	sched     *Scheduler
	startRole Role

	state      GameState
	pause      PauseState
	difficulty config.Difficulty
	round      uuid.UUID
	tick       uint64
	reason     OverReason

	snake   *Snake
	food    Cell
	hasFood bool
	score   int

	// Validated heading waiting for the next fixed step.
	pending    Direction
	hasPending bool
}

// New creates a game on the main menu. The seed drives food placement and
// round IDs, so equal seeds and inputs replay identically.
func New(cfg config.Config, seed int64) *Game {
	grid := NewGrid(cfg.Board.Cells, cfg.Board.NodeSize)
	rng := rand.New(rand.NewSource(seed))

	start := UnknownRole()
	if d, ok := ParseDirection(cfg.Snake.StartDirection); ok {
		start = HeadRole(d)
	}

	return &Game{
		cfg:        cfg,
		grid:       grid,
		rng:        rng,
		spawner:    NewSpawner(grid, rng, cfg.Food.MaxAttempts),
		sched:      NewScheduler(cfg.Timing.Interval(config.DifficultyNormal), cfg.Timing.MaxCatchUp),
		startRole:  start,
		state:      GameState{App: AppMainMenu},
		difficulty: config.DifficultyNormal,
	}
}

// Start begins a round at difficulty d from the main menu or the game over
// screen. The previous round is torn down and a fresh snake, food and score
// are built before the first step can run. It does nothing mid-round.
func (g *Game) Start(d config.Difficulty) []Event {
	if !g.state.CanStart() {
		return nil
	}

	g.difficulty = d
	g.sched.Reset(g.cfg.Timing.Interval(d))
	g.state = GameState{App: AppInGame, InGame: InGamePreparing}

	g.teardown()
	g.setupRound()

	g.state.InGame = InGamePlaying
	return []Event{g.event(EventRoundStarted)}
}

func (g *Game) teardown() {
	g.snake = nil
	g.hasFood = false
	g.score = 0
	g.hasPending = false
	g.reason = ReasonNone
	g.tick = 0
}

func (g *Game) setupRound() {
	g.round = g.newRoundID()
	g.pause = PauseState{}
	g.snake = NewSnake(Cell{}, g.startRole)
	if food, err := g.spawner.Spawn(g.snake.Occupied()); err == nil {
		g.food, g.hasFood = food, true
	}
}

func (g *Game) newRoundID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.New()
	}
	return id
}

// Quit reports whether the host should terminate. Quitting is honored only
// where the menu is showing and when the host allows it.
func (g *Game) Quit() bool {
	return g.cfg.AllowQuit && g.state.CanStart()
}

// TogglePause flips the player's pause flag while a round is running.
func (g *Game) TogglePause() []Event {
	if !g.state.Playing() {
		return nil
	}
	before := g.pause.Effective()
	g.pause.User = !g.pause.User
	return g.pauseEvents(before)
}

// SetFocus records whether the host window has focus. Losing focus pauses.
func (g *Game) SetFocus(focused bool) []Event {
	before := g.pause.Effective()
	g.pause.FocusLost = !focused
	if !g.state.Playing() {
		return nil
	}
	return g.pauseEvents(before)
}

func (g *Game) pauseEvents(before bool) []Event {
	after := g.pause.Effective()
	switch {
	case before == after:
		return nil
	case after:
		return []Event{g.event(EventPaused)}
	default:
		return []Event{g.event(EventResumed)}
	}
}

// Steer records d as the heading for the next step if it is legal now.
// Requests while paused or outside a round, and reversals onto the body,
// are ignored. A later request before the step replaces an earlier one.
func (g *Game) Steer(d Direction) bool {
	if !g.state.Playing() || g.pause.Effective() {
		return false
	}
	if !CanSteer(g.snake, d) {
		return false
	}
	g.pending, g.hasPending = d, true
	return true
}

// Input applies one polling pass of intents: steering, pause toggle, then
// start and quit. It reports whether the host should terminate.
func (g *Game) Input(frame core.InputFrame) ([]Event, bool) {
	var events []Event

	if d, ok := ResolveIntent(frame); ok {
		g.Steer(d)
	}
	if frame.Has(core.ActionPause) {
		events = append(events, g.TogglePause()...)
	}

	switch {
	case frame.Has(core.ActionStartEasy):
		events = append(events, g.Start(config.DifficultyEasy)...)
	case frame.Has(core.ActionStartNormal):
		events = append(events, g.Start(config.DifficultyNormal)...)
	case frame.Has(core.ActionStartHard):
		events = append(events, g.Start(config.DifficultyHard)...)
	case frame.Has(core.ActionQuit):
		if g.Quit() {
			return events, true
		}
	}
	return events, false
}

// Advance feeds elapsed wall time to the scheduler and runs every step that
// became due. Steps that fall while paused are consumed without effect.
func (g *Game) Advance(elapsed time.Duration) []Event {
	var events []Event
	for range g.sched.Advance(elapsed) {
		events = append(events, g.Tick()...)
	}
	return events
}

// Tick runs one fixed step. It does nothing unless a round is running and
// the game is not paused.
//
// A step first applies the pending heading. If food is directly ahead the
// snake grows onto it instead of moving; otherwise it moves one cell and a
// boundary or self collision ends the round.
func (g *Game) Tick() []Event {
	if !g.state.Playing() || g.pause.Effective() {
		return nil
	}
	g.tick++

	if g.hasPending {
		g.snake.setHeading(g.pending)
		g.hasPending = false
	}

	if g.hasFood && FoodAhead(g.snake, g.food) {
		return g.eat()
	}

	if c := Move(g.snake, g.grid); c != CollisionNone {
		return g.endRound(reasonFor(c))
	}
	g.checkInvariants()
	return nil
}

func (g *Game) eat() []Event {
	eaten := g.food
	g.snake.grow(eaten)
	g.score++

	ate := g.event(EventAte)
	ate.Cell = eaten
	events := []Event{ate}

	food, err := g.spawner.Spawn(g.snake.Occupied())
	if err != nil {
		g.hasFood = false
		g.checkInvariants()
		return append(events, g.endRound(ReasonBoardFull)...)
	}
	g.food = food
	g.checkInvariants()
	return events
}

func (g *Game) endRound(reason OverReason) []Event {
	g.state.InGame = InGameGameOver
	g.reason = reason
	g.hasPending = false
	return []Event{g.event(EventGameOver)}
}

func (g *Game) event(kind EventKind) Event {
	ev := Event{
		Kind:       kind,
		Round:      g.round,
		Difficulty: g.difficulty,
		Tick:       g.tick,
		Score:      g.score,
		Reason:     g.reason,
	}
	if g.snake != nil {
		ev.Length = g.snake.Len()
	}
	return ev
}

// checkInvariants panics on a broken chain when debug_invariants is set.
func (g *Game) checkInvariants() {
	if !g.cfg.DebugInvariants || g.snake == nil {
		return
	}
	if err := g.snake.Validate(); err != nil {
		panic(fmt.Sprintf("snake: invariant violated at tick %d: %v", g.tick, err))
	}
	if g.hasFood && g.snake.Occupies(g.food) {
		panic(fmt.Sprintf("snake: food %s spawned on the snake at tick %d", g.food, g.tick))
	}
	if g.score != g.snake.Len()-1 {
		panic(fmt.Sprintf("snake: score %d does not match length %d", g.score, g.snake.Len()))
	}
}

// State returns the current game state.
func (g *Game) State() GameState {
	return g.state
}

// Paused returns the effective pause flag.
func (g *Game) Paused() bool {
	return g.pause.Effective()
}

// PauseState returns both pause sources.
func (g *Game) PauseState() PauseState {
	return g.pause
}

// Score returns the number of food items eaten this round.
func (g *Game) Score() int {
	return g.score
}

// Difficulty returns the preset of the current or last round.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// Interval returns the fixed step interval in effect.
func (g *Game) Interval() time.Duration {
	return g.sched.Interval()
}

// Round returns the ID of the current or last round.
func (g *Game) Round() uuid.UUID {
	return g.round
}

// Grid returns the playable grid.
func (g *Game) Grid() Grid {
	return g.grid
}

// Reason returns why the last round ended.
func (g *Game) Reason() OverReason {
	return g.reason
}

// Food returns the food cell, if any.
func (g *Game) Food() (Cell, bool) {
	return g.food, g.hasFood
}

// Segments returns a copy of the snake chain, head first. It is nil before
// the first round.
func (g *Game) Segments() []Segment {
	if g.snake == nil {
		return nil
	}
	return g.snake.Segments()
}

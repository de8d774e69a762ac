package game

import (
	"fmt"
	"math/rand"

	"github.com/dmelnik/tui-snake/internal/core"
	"github.com/dmelnik/tui-snake/internal/game/level"
)

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseLevelComplete
	PhaseGameOver // terminal
	PhaseVictory  // terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseLevelComplete:
		return "level-complete"
	case PhaseGameOver:
		return "game-over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// engine is the game state machine: it owns the mutable state of one game
// and advances it one tick at a time. Only the Session mutates it.
type engine struct {
	rng     *rand.Rand
	catalog level.Catalog
	rules   Rules

	lvl       level.Level
	board     *Board
	snake     *Snake
	food      core.Point
	foodEaten int // food eaten in the current level
	score     int
	phase     Phase
}

// newEngine starts a game at the given level with score zero.
func newEngine(catalog level.Catalog, rules Rules, startLevel int, rng *rand.Rand) (*engine, error) {
	e := &engine{
		rng:     rng,
		catalog: catalog,
		rules:   rules,
	}
	if err := e.loadLevel(startLevel); err != nil {
		return nil, err
	}
	return e, nil
}

// loadLevel swaps in a level: fresh board, snake at spawn, new food.
// The score is untouched; it carries across levels.
func (e *engine) loadLevel(n int) error {
	lvl, err := e.catalog.Get(n)
	if err != nil {
		return fmt.Errorf("loading level %d: %w", n, err)
	}

	e.lvl = lvl
	e.board = NewBoard(lvl)
	e.snake = NewSnake(lvl.Spawn, lvl.Heading)
	e.foodEaten = 0
	e.phase = PhaseRunning
	e.placeFood()
	return nil
}

// foodTarget returns the food count required to finish the current level.
func (e *engine) foodTarget() int {
	if e.rules.FoodTarget > 0 {
		return e.rules.FoodTarget
	}
	return e.lvl.FoodTarget
}

// placeFood puts a new food item on a free cell. A full board means the
// snake has conquered it: that is a victory, not an error.
func (e *engine) placeFood() {
	p, err := PlaceFood(e.rng, e.board, e.snake.Body())
	if err != nil {
		e.food = noFood
		e.phase = PhaseVictory
		return
	}
	e.food = p
}

// tick advances the simulation by one step. Outside the running and
// level-complete phases it does nothing.
func (e *engine) tick(intent core.Direction) {
	switch e.phase {
	case PhaseLevelComplete:
		// The transient state resolves on the next tick: reload and
		// resume. Level 10 completion never reaches here.
		//nolint:errcheck // next level is known to exist
		e.loadLevel(e.lvl.Number + 1)
		return
	case PhaseRunning:
	default:
		return
	}

	// A reversal attempt is swallowed whole: no heading change and no
	// move this tick.
	if intent != core.DirNone && intent == e.snake.Heading().Opposite() {
		return
	}

	e.snake.Steer(intent)
	next := e.snake.NextHead()

	if e.board.Blocked(next) || e.snake.HitsSelf(next) {
		e.phase = PhaseGameOver
		return
	}

	ate := next == e.food
	if ate {
		e.snake.Grow()
	}
	e.snake.Advance()

	if !ate {
		return
	}

	e.score += e.rules.FoodReward
	e.foodEaten++

	if e.foodEaten >= e.foodTarget() {
		e.completeLevel()
		return
	}

	// Placement happens after the move committed, so the new food can
	// never land on a cell the snake occupies after this tick.
	e.placeFood()
}

// completeLevel applies the completion bonus and either finishes the
// campaign or parks the game in the transient level-complete state.
func (e *engine) completeLevel() {
	e.score += e.rules.LevelBonus
	e.food = noFood
	if e.lvl.Number >= e.catalog.Count() {
		e.phase = PhaseVictory
		return
	}
	e.phase = PhaseLevelComplete
}

// pause suspends a running game.
func (e *engine) pause() {
	if e.phase == PhaseRunning {
		e.phase = PhasePaused
	}
}

// resume continues a paused game.
func (e *engine) resume() {
	if e.phase == PhasePaused {
		e.phase = PhaseRunning
	}
}

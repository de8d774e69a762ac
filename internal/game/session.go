package game

import (
	"math/rand"
	"time"

	"github.com/dmelnik/tui-snake/internal/core"
	"github.com/dmelnik/tui-snake/internal/game/level"
)

// Session is the single owner of a game's mutable state. Callers drive it
// through commands and observe the result through the returned snapshots;
// nothing else mutates the engine.
type Session struct {
	catalog    level.Catalog
	rules      Rules
	rng        *rand.Rand
	startLevel int

	eng     *engine
	attempt int
	ended   bool
}

// SessionOption customizes a new session.
type SessionOption func(*Session)

// WithRules overrides the default scoring rules.
func WithRules(r Rules) SessionOption {
	return func(s *Session) { s.rules = r }
}

// WithStartLevel starts each game at the given level instead of level 1.
func WithStartLevel(n int) SessionOption {
	return func(s *Session) { s.startLevel = n }
}

// WithCatalog replaces the built-in level catalog.
func WithCatalog(c level.Catalog) SessionOption {
	return func(s *Session) { s.catalog = c }
}

// NewSession creates a session and starts its first game. A zero seed
// derives one from the clock; any other seed makes the food sequence
// reproducible.
func NewSession(seed int64, opts ...SessionOption) (*Session, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		catalog:    level.Builtin(),
		rules:      DefaultRules(),
		rng:        rand.New(rand.NewSource(seed)),
		startLevel: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	eng, err := newEngine(s.catalog, s.rules, s.startLevel, s.rng)
	if err != nil {
		return nil, err
	}
	s.eng = eng
	s.attempt = 1
	return s, nil
}

// NewGame discards the current game and starts a fresh one at the start
// level with score zero. The attempt counter survives restarts.
func (s *Session) NewGame() (Snapshot, error) {
	eng, err := newEngine(s.catalog, s.rules, s.startLevel, s.rng)
	if err != nil {
		return Snapshot{}, err
	}
	s.eng = eng
	s.attempt++
	s.ended = false
	return s.Snapshot(), nil
}

// Tick advances the game one step with the given steering intent.
// Terminal phases freeze the game; ticking them is a no-op.
func (s *Session) Tick(intent core.Direction) Snapshot {
	if !s.ended {
		s.eng.tick(intent)
	}
	return s.Snapshot()
}

// Pause suspends a running game. In any other phase it is a no-op.
func (s *Session) Pause() Snapshot {
	if !s.ended {
		s.eng.pause()
	}
	return s.Snapshot()
}

// Resume continues a paused game. In any other phase it is a no-op.
func (s *Session) Resume() Snapshot {
	if !s.ended {
		s.eng.resume()
	}
	return s.Snapshot()
}

// Quit ends the session. The final snapshot remains readable; all other
// commands except NewGame become no-ops.
func (s *Session) Quit() Snapshot {
	s.ended = true
	return s.Snapshot()
}

// Ended reports whether the session was quit.
func (s *Session) Ended() bool {
	return s.ended
}

// LevelCount returns the number of levels in the session's catalog.
func (s *Session) LevelCount() int {
	return s.catalog.Count()
}

// Snapshot returns the current state without advancing it.
func (s *Session) Snapshot() Snapshot {
	return s.eng.snapshot(s.attempt)
}

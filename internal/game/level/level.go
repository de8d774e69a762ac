// Package level provides the campaign level catalog: ten hand-authored
// boards with fixed obstacle layouts, movement intervals, and food targets.
// Definitions are immutable once loaded and looked up by level number.
package level

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmelnik/tui-snake/internal/core"
)

// ErrInvalidLevel is returned when a level number is outside 1..Count().
var ErrInvalidLevel = errors.New("level: invalid level number")

// Level is an immutable level definition.
type Level struct {
	Number     int           // 1-based level number
	Name       string        // Display name
	Width      int           // Board width including border walls
	Height     int           // Board height including border walls
	Interval   time.Duration // Time between snake moves
	FoodTarget int           // Food to eat before the level is complete
	Spawn      core.Point    // Initial head position
	Heading    core.Direction

	obstacles map[core.Point]bool
}

// Obstacles returns a copy of the level's obstacle coordinate set.
// Border walls are not included.
func (l Level) Obstacles() []core.Point {
	out := make([]core.Point, 0, len(l.obstacles))
	for p := range l.obstacles {
		out = append(out, p)
	}
	return out
}

// IsObstacle reports whether the cell holds a level obstacle.
func (l Level) IsObstacle(p core.Point) bool {
	return l.obstacles[p]
}

// ObstacleCount returns the number of obstacle cells.
func (l Level) ObstacleCount() int {
	return len(l.obstacles)
}

// Catalog is an ordered, immutable collection of levels. The zero value is
// empty; use Builtin or LoadPack to obtain one.
type Catalog struct {
	levels []Level
}

// Count returns the number of levels in the catalog.
func (c Catalog) Count() int {
	return len(c.levels)
}

// Get returns the level definition for number n (1-based).
func (c Catalog) Get(n int) (Level, error) {
	if n < 1 || n > len(c.levels) {
		return Level{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLevel, n, len(c.levels))
	}
	return c.levels[n-1], nil
}

// Names returns the display names of all levels, in order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.levels))
	for i, l := range c.levels {
		names[i] = l.Name
	}
	return names
}

// builtin holds the campaign levels, parsed once at package init.
var builtin Catalog

func init() {
	levels := make([]Level, 0, len(definitions))
	for _, def := range definitions {
		lvl, err := build(def)
		if err != nil {
			panic(fmt.Sprintf("level: bad built-in definition %d: %v", def.number, err))
		}
		levels = append(levels, lvl)
	}
	builtin = Catalog{levels: levels}
}

// Builtin returns the built-in campaign catalog.
func Builtin() Catalog {
	return builtin
}

// build parses a definition's layout into a Level and validates it.
func build(def definition) (Level, error) {
	lvl := Level{
		Number:     def.number,
		Name:       def.name,
		Height:     len(def.layout),
		Interval:   def.interval,
		FoodTarget: def.foodTarget,
		Spawn:      def.spawn,
		Heading:    core.DirRight,
		obstacles:  make(map[core.Point]bool),
	}

	for _, row := range def.layout {
		if len(row) > lvl.Width {
			lvl.Width = len(row)
		}
	}

	// Interior '#' cells are obstacles; the border is implicit walls.
	for y, row := range def.layout {
		for x, ch := range row {
			if ch != '#' {
				continue
			}
			if x == 0 || x == lvl.Width-1 || y == 0 || y == lvl.Height-1 {
				continue
			}
			lvl.obstacles[core.Point{X: x, Y: y}] = true
		}
	}

	if err := validate(lvl); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// validate checks the structural invariants every level must satisfy.
func validate(l Level) error {
	if l.Width < 8 || l.Height < 8 {
		return fmt.Errorf("board %dx%d too small", l.Width, l.Height)
	}
	if l.Interval <= 0 {
		return fmt.Errorf("non-positive interval %v", l.Interval)
	}
	if l.FoodTarget <= 0 {
		return fmt.Errorf("non-positive food target %d", l.FoodTarget)
	}

	// Spawn, the two body cells behind it, and the first few cells ahead
	// must be interior and free of obstacles.
	back := l.Heading.Opposite().Delta()
	ahead := l.Heading.Delta()
	cells := []core.Point{
		l.Spawn.Add(back).Add(back),
		l.Spawn.Add(back),
		l.Spawn,
	}
	p := l.Spawn
	for i := 0; i < spawnClearance; i++ {
		p = p.Add(ahead)
		cells = append(cells, p)
	}
	for _, c := range cells {
		if c.X <= 0 || c.X >= l.Width-1 || c.Y <= 0 || c.Y >= l.Height-1 {
			return fmt.Errorf("spawn path cell %v outside board interior", c)
		}
		if l.obstacles[c] {
			return fmt.Errorf("spawn path cell %v blocked by obstacle", c)
		}
	}
	return nil
}

// spawnClearance is the number of cells ahead of the spawn that must be
// free, giving the player time to react before the first obstacle.
const spawnClearance = 4

// Count returns the number of built-in levels.
func Count() int {
	return builtin.Count()
}

// Get returns the built-in level definition for number n (1-based).
func Get(n int) (Level, error) {
	return builtin.Get(n)
}

// Names returns the display names of all built-in levels, in order.
func Names() []string {
	return builtin.Names()
}

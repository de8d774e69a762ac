package level

import (
	"errors"
	"testing"

	"github.com/dmelnik/tui-snake/internal/core"
)

func TestCount(t *testing.T) {
	if Count() != 10 {
		t.Errorf("Expected 10 built-in levels, got %d", Count())
	}
}

func TestGetValidRange(t *testing.T) {
	for n := 1; n <= Count(); n++ {
		lvl, err := Get(n)
		if err != nil {
			t.Errorf("Get(%d) failed: %v", n, err)
			continue
		}
		if lvl.Number != n {
			t.Errorf("Get(%d) returned level number %d", n, lvl.Number)
		}
		if lvl.Name == "" {
			t.Errorf("Level %d has empty name", n)
		}
		if lvl.FoodTarget <= 0 {
			t.Errorf("Level %d has invalid food target %d", n, lvl.FoodTarget)
		}
		if lvl.Interval <= 0 {
			t.Errorf("Level %d has invalid interval %v", n, lvl.Interval)
		}
	}
}

func TestGetInvalidLevel(t *testing.T) {
	for _, n := range []int{0, -1, 11, 100} {
		_, err := Get(n)
		if !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Get(%d) error = %v, expected ErrInvalidLevel", n, err)
		}
	}
}

func TestIntervalsNonIncreasing(t *testing.T) {
	prev, err := Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	for n := 2; n <= Count(); n++ {
		lvl, err := Get(n)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", n, err)
		}
		if lvl.Interval > prev.Interval {
			t.Errorf("Level %d interval %v exceeds level %d interval %v",
				n, lvl.Interval, n-1, prev.Interval)
		}
		prev = lvl
	}
}

func TestObstaclesExcludeBorder(t *testing.T) {
	for n := 1; n <= Count(); n++ {
		lvl, _ := Get(n)
		for _, p := range lvl.Obstacles() {
			if p.X <= 0 || p.X >= lvl.Width-1 || p.Y <= 0 || p.Y >= lvl.Height-1 {
				t.Errorf("Level %d obstacle %v overlaps border", n, p)
			}
		}
	}
}

func TestSpawnPathClear(t *testing.T) {
	for n := 1; n <= Count(); n++ {
		lvl, _ := Get(n)

		// Head, two body cells behind it, and the clearance run ahead.
		back := lvl.Heading.Opposite().Delta()
		ahead := lvl.Heading.Delta()
		cells := []core.Point{
			lvl.Spawn.Add(back).Add(back),
			lvl.Spawn.Add(back),
			lvl.Spawn,
		}
		p := lvl.Spawn
		for i := 0; i < spawnClearance; i++ {
			p = p.Add(ahead)
			cells = append(cells, p)
		}

		for _, c := range cells {
			if c.X <= 0 || c.X >= lvl.Width-1 || c.Y <= 0 || c.Y >= lvl.Height-1 {
				t.Errorf("Level %d spawn path cell %v outside interior", n, c)
			}
			if lvl.IsObstacle(c) {
				t.Errorf("Level %d spawn path cell %v blocked by obstacle", n, c)
			}
		}
	}
}

func TestObstaclesImmutable(t *testing.T) {
	lvl, _ := Get(2)
	before := lvl.ObstacleCount()

	obs := lvl.Obstacles()
	if len(obs) == 0 {
		t.Fatal("Level 2 should have obstacles")
	}
	obs[0] = core.Point{X: -99, Y: -99}

	again, _ := Get(2)
	if again.ObstacleCount() != before {
		t.Error("Mutating the returned obstacle slice must not affect the catalog")
	}
	if again.IsObstacle(core.Point{X: -99, Y: -99}) {
		t.Error("Catalog obstacles leaked mutable state")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != Count() {
		t.Fatalf("Names() returned %d entries, expected %d", len(names), Count())
	}
	if names[0] != "Open Field" {
		t.Errorf("Level 1 name = %q, expected 'Open Field'", names[0])
	}
}

const validPack = `
name: test pack
levels:
  - name: First
    interval_ms: 300
    food_target: 3
    spawn: {x: 4, y: 5}
    layout:
      - "############"
      - "#          #"
      - "#          #"
      - "#          #"
      - "#          #"
      - "#          #"
      - "#          #"
      - "#          #"
      - "#          #"
      - "############"
  - name: Second
    interval_ms: 200
    food_target: 3
    spawn: {x: 4, y: 5}
    layout:
      - "############"
      - "#          #"
      - "#          #"
      - "#          #"
      - "#        # #"
      - "#          #"
      - "#          #"
      - "#        # #"
      - "#          #"
      - "############"
`

func TestParsePack(t *testing.T) {
	cat, err := ParsePack([]byte(validPack))
	if err != nil {
		t.Fatalf("ParsePack() failed: %v", err)
	}
	if cat.Count() != 2 {
		t.Fatalf("Expected 2 levels, got %d", cat.Count())
	}

	first, err := cat.Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	if first.Name != "First" {
		t.Errorf("Level 1 name = %q, expected 'First'", first.Name)
	}
	if first.Width != 12 || first.Height != 10 {
		t.Errorf("Level 1 dimensions = %dx%d, expected 12x10", first.Width, first.Height)
	}

	second, _ := cat.Get(2)
	if second.ObstacleCount() != 2 {
		t.Errorf("Level 2 obstacle count = %d, expected 2", second.ObstacleCount())
	}
}

func TestParsePackRejectsIncreasingInterval(t *testing.T) {
	pack := `
levels:
  - interval_ms: 100
    food_target: 1
    spawn: {x: 4, y: 4}
    layout: ["##########","#        #","#        #","#        #","#        #","#        #","#        #","#        #","#        #","##########"]
  - interval_ms: 200
    food_target: 1
    spawn: {x: 4, y: 4}
    layout: ["##########","#        #","#        #","#        #","#        #","#        #","#        #","#        #","#        #","##########"]
`
	if _, err := ParsePack([]byte(pack)); err == nil {
		t.Error("ParsePack should reject packs whose intervals increase")
	}
}

func TestParsePackRejectsBlockedSpawn(t *testing.T) {
	pack := `
levels:
  - interval_ms: 100
    food_target: 1
    spawn: {x: 4, y: 4}
    layout: ["##########","#        #","#        #","#        #","#    #   #","#        #","#        #","#        #","#        #","##########"]
`
	if _, err := ParsePack([]byte(pack)); err == nil {
		t.Error("ParsePack should reject a spawn path blocked by an obstacle")
	}
}

func TestParsePackRejectsEmpty(t *testing.T) {
	if _, err := ParsePack([]byte("levels: []")); err == nil {
		t.Error("ParsePack should reject an empty pack")
	}
}

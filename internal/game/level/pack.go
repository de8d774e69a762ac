package level

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmelnik/tui-snake/internal/core"
)

// packFile is the YAML structure of a custom level pack.
type packFile struct {
	Name   string      `yaml:"name,omitempty"`
	Levels []packLevel `yaml:"levels"`
}

// packLevel is a single level entry in a pack file.
type packLevel struct {
	Name       string    `yaml:"name"`
	IntervalMS int       `yaml:"interval_ms"`
	FoodTarget int       `yaml:"food_target"`
	Spawn      packPoint `yaml:"spawn"`
	Layout     []string  `yaml:"layout"`
}

// packPoint is a YAML grid coordinate.
type packPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadPack reads a custom level pack from a YAML file. Levels are numbered
// by their position in the file. Movement intervals must be non-increasing
// across the pack, matching the difficulty contract of the built-in catalog.
func LoadPack(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("level: reading pack %s: %w", path, err)
	}
	return ParsePack(data)
}

// ParsePack parses level pack YAML.
func ParsePack(data []byte) (Catalog, error) {
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Catalog{}, fmt.Errorf("level: parsing pack: %w", err)
	}
	if len(pf.Levels) == 0 {
		return Catalog{}, fmt.Errorf("level: pack contains no levels")
	}

	levels := make([]Level, 0, len(pf.Levels))
	prev := time.Duration(0)
	for i, pl := range pf.Levels {
		def := definition{
			number:     i + 1,
			name:       pl.Name,
			interval:   time.Duration(pl.IntervalMS) * time.Millisecond,
			foodTarget: pl.FoodTarget,
			spawn:      core.Point{X: pl.Spawn.X, Y: pl.Spawn.Y},
			layout:     pl.Layout,
		}
		if def.name == "" {
			def.name = fmt.Sprintf("Level %d", i+1)
		}
		lvl, err := build(def)
		if err != nil {
			return Catalog{}, fmt.Errorf("level: pack level %d: %w", i+1, err)
		}
		if prev > 0 && lvl.Interval > prev {
			return Catalog{}, fmt.Errorf("level: pack level %d: interval %v exceeds previous level's %v", i+1, lvl.Interval, prev)
		}
		prev = lvl.Interval
		levels = append(levels, lvl)
	}

	return Catalog{levels: levels}, nil
}

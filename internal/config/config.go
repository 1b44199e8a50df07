// Package config loads the game configuration from YAML and the SSH server
// configuration from YAML plus environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Search    SearchConfig    `yaml:"search"`
	Speed     SpeedConfig     `yaml:"speed"`
}

// PlayfieldConfig is the playfield size in pixels. The grid has
// height/cell_size rows and width/cell_size columns.
type PlayfieldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// Rows returns the number of grid rows.
func (p PlayfieldConfig) Rows() int {
	rows, _ := engine.Dimensions(p.Width, p.Height, p.CellSize)
	return rows
}

// Columns returns the number of grid columns.
func (p PlayfieldConfig) Columns() int {
	_, cols := engine.Dimensions(p.Width, p.Height, p.CellSize)
	return cols
}

// SearchConfig tunes the autonomous player.
type SearchConfig struct {
	// Weights for holes created, bumpiness, drop height and lines cleared.
	Weights   []float64 `yaml:"weights"`
	Lookahead bool      `yaml:"lookahead"`
}

// SpeedConfig maps levels to fall intervals.
type SpeedConfig struct {
	Levels []SpeedStep `yaml:"levels"`
}

// SpeedStep applies IntervalMS from level From until the next step.
type SpeedStep struct {
	From       int `yaml:"from"`
	IntervalMS int `yaml:"interval_ms"`
}

// MinGridSide is the smallest playable number of rows or columns.
const MinGridSide = 4

var errInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	p := c.Playfield
	if p.Width <= 0 || p.Height <= 0 || p.CellSize <= 0 {
		return fmt.Errorf("%w: playfield sizes must be positive, got %dx%d cell %d",
			errInvalid, p.Width, p.Height, p.CellSize)
	}
	if p.Rows() < MinGridSide || p.Columns() < MinGridSide {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			errInvalid, p.Columns(), p.Rows(), MinGridSide, MinGridSide)
	}
	if len(c.Search.Weights) != 4 {
		return fmt.Errorf("%w: search needs 4 weights, got %d", errInvalid, len(c.Search.Weights))
	}
	if len(c.Speed.Levels) == 0 {
		return fmt.Errorf("%w: speed table is empty", errInvalid)
	}
	prev := 0
	for _, s := range c.Speed.Levels {
		if s.From <= prev {
			return fmt.Errorf("%w: speed levels must start at 1 and increase, got %d after %d",
				errInvalid, s.From, prev)
		}
		if s.IntervalMS <= 0 {
			return fmt.Errorf("%w: level %d interval must be positive", errInvalid, s.From)
		}
		prev = s.From
	}
	if c.Speed.Levels[0].From != 1 {
		return fmt.Errorf("%w: speed table must start at level 1", errInvalid)
	}
	return nil
}

// IsInvalid reports whether err came from Validate.
func IsInvalid(err error) bool {
	return errors.Is(err, errInvalid)
}

package level

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/balloon-math/problem"
)

var (
	// ErrEmptyCatalog is returned when a catalog document carries no levels
	ErrEmptyCatalog = errors.New("level catalog is empty")
	// ErrInvalidLevel is returned when a level entry fails validation
	ErrInvalidLevel = errors.New("invalid level")
)

// Config is one read-only level definition
type Config struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	MinBalloons int      `yaml:"min_balloons"`
	MaxBalloons int      `yaml:"max_balloons"`
	Speed       float64  `yaml:"speed"`
	Ops         []string `yaml:"operations"`
	Range       [2]int   `yaml:"range"`
	TimeLimit   int      `yaml:"time_limit,omitempty"` // Seconds, 0 = unlimited
	Description string   `yaml:"description"`

	// Operations is compiled from Ops during validation
	Operations []problem.Op `yaml:"-"`
}

// Low returns the inclusive lower operand bound
func (c *Config) Low() int { return c.Range[0] }

// High returns the inclusive upper operand bound
func (c *Config) High() int { return c.Range[1] }

// Duration returns the time limit, zero when the level is untimed
func (c *Config) Duration() time.Duration {
	return time.Duration(c.TimeLimit) * time.Second
}

// compile validates the entry and resolves operation names
func (c *Config) compile() error {
	if c.ID <= 0 {
		return fmt.Errorf("%w: id %d must be positive", ErrInvalidLevel, c.ID)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: level %d speed %.2f must be positive", ErrInvalidLevel, c.ID, c.Speed)
	}
	if c.MaxBalloons <= 0 {
		return fmt.Errorf("%w: level %d max_balloons must be positive", ErrInvalidLevel, c.ID)
	}
	if c.MinBalloons < 0 || c.MinBalloons > c.MaxBalloons {
		return fmt.Errorf("%w: level %d min_balloons %d outside [0, %d]", ErrInvalidLevel, c.ID, c.MinBalloons, c.MaxBalloons)
	}
	if c.Range[0] < 0 || c.Range[0] > c.Range[1] {
		return fmt.Errorf("%w: level %d range [%d, %d]", ErrInvalidLevel, c.ID, c.Range[0], c.Range[1])
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: level %d negative time_limit", ErrInvalidLevel, c.ID)
	}
	if len(c.Ops) == 0 {
		return fmt.Errorf("%w: level %d has no operations", ErrInvalidLevel, c.ID)
	}

	c.Operations = make([]problem.Op, 0, len(c.Ops))
	for _, name := range c.Ops {
		op, err := problem.ParseOp(name)
		if err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrInvalidLevel, c.ID, err)
		}
		c.Operations = append(c.Operations, op)
	}
	return nil
}

package engine

import (
	"time"

	"github.com/abhisek/pathcraft/internal/difficulty"
	"github.com/abhisek/pathcraft/internal/pathcheck"
	"github.com/abhisek/pathcraft/internal/prereq"
	"github.com/abhisek/pathcraft/internal/taxonomy"
	"github.com/abhisek/pathcraft/internal/timeest"
)

// Config controls the generation pipeline.
type Config struct {
	// MatchThreshold is the minimum goal-to-domain confidence for the
	// taxonomy mapping to count.
	MatchThreshold float64

	// DraftTimeout bounds the single drafter call. Zero means no
	// engine-imposed limit.
	DraftTimeout time.Duration

	// AllowDegradedFallback lets generation continue when the goal maps
	// to no domain or the drafter fails, producing a degraded path
	// instead of an error.
	AllowDegradedFallback bool

	// MaxGoalLength rejects absurdly long goal inputs.
	MaxGoalLength int

	Prereq     prereq.Config
	Difficulty difficulty.Config
	Timeest    timeest.Config
	Check      pathcheck.Config
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		MatchThreshold: taxonomy.DefaultMatchThreshold,
		DraftTimeout:   60 * time.Second,
		MaxGoalLength:  500,
		Prereq:         prereq.DefaultConfig(),
		Difficulty:     difficulty.DefaultConfig(),
		Timeest:        timeest.DefaultConfig(),
		Check:          pathcheck.DefaultConfig(),
	}
}

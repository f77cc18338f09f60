// Package timeest assigns duration estimates to milestones and paths.
// Estimation is a pure function of its inputs: the same milestone and the
// same weekly budget always produce the same duration.
package timeest

import (
	"github.com/abhisek/pathcraft/internal/learnpath"
)

// Config names the estimation constants. The values are heuristics tuned
// for plausibility, not derived; callers may override any of them.
type Config struct {
	// PerSkillHours is the base effort per target skill in a milestone.
	PerSkillHours float64

	// PerResourceHours is the base effort per attached resource, the
	// content-volume proxy.
	PerResourceHours float64

	// Multipliers scale effort by milestone difficulty.
	BeginnerMultiplier     float64
	IntermediateMultiplier float64
	AdvancedMultiplier     float64

	// FullTimeWeeklyHours is the reference budget of a full-time learner.
	FullTimeWeeklyHours float64

	// MaxStretchFactor caps how much longer a part-time learner's
	// calendar estimate may run versus the full-time estimate.
	MaxStretchFactor float64

	// BufferFraction is added once at the path level, never per
	// milestone.
	BufferFraction float64
}

// DefaultConfig returns the standard estimation constants.
func DefaultConfig() Config {
	return Config{
		PerSkillHours:          3,
		PerResourceHours:       2,
		BeginnerMultiplier:     1.0,
		IntermediateMultiplier: 1.5,
		AdvancedMultiplier:     2.0,
		FullTimeWeeklyHours:    40,
		MaxStretchFactor:       4.0,
		BufferFraction:         0.15,
	}
}

func (c Config) multiplier(d learnpath.SkillLevel) float64 {
	switch d {
	case learnpath.LevelIntermediate:
		return c.IntermediateMultiplier
	case learnpath.LevelAdvanced:
		return c.AdvancedMultiplier
	default:
		return c.BeginnerMultiplier
	}
}

// EstimateMilestone computes the milestone's duration under the given
// weekly budget. Effort already present on the milestone (synthesized
// prerequisites carry a preset effort class) is kept; otherwise effort is
// derived from content volume and difficulty. Calendar time is the effort
// spread over the weekly budget, clamped so no plan stretches beyond
// MaxStretchFactor times the full-time estimate.
func EstimateMilestone(m learnpath.Milestone, weeklyHours float64, cfg Config) learnpath.Duration {
	effort := m.EstimatedDuration.EffortHours
	if effort <= 0 {
		base := float64(len(m.TargetSkills))*cfg.PerSkillHours +
			float64(len(m.Resources))*cfg.PerResourceHours
		effort = base * cfg.multiplier(m.Difficulty)
	}

	fullTimeDays := effort / cfg.FullTimeWeeklyHours * 7
	days := effort / weeklyHours * 7
	if max := fullTimeDays * cfg.MaxStretchFactor; days > max {
		days = max
	}

	return learnpath.Duration{EffortHours: effort, CalendarDays: days}
}

// EstimatePath assigns a duration to every milestone and returns the new
// milestone slice together with the path total. The total is the sum of
// per-milestone durations scaled by (1 + BufferFraction); the buffer is
// applied exactly once, at the path level.
func EstimatePath(milestones []learnpath.Milestone, weeklyHours float64, cfg Config) ([]learnpath.Milestone, learnpath.Duration) {
	out := make([]learnpath.Milestone, len(milestones))
	var sum learnpath.Duration

	for i, m := range milestones {
		m = m.Clone()
		m.EstimatedDuration = EstimateMilestone(m, weeklyHours, cfg)
		sum = sum.Add(m.EstimatedDuration)
		out[i] = m
	}

	return out, sum.Scale(1 + cfg.BufferFraction)
}

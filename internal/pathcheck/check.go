// Package pathcheck validates the structure of a generated learning path
// and repairs the defect classes that can be fixed mechanically. All
// transforms are pure: repairs return a new path plus an audit trail and
// never mutate their input.
package pathcheck

import (
	"fmt"
	"math"

	"github.com/abhisek/pathcraft/internal/difficulty"
	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/timeest"
)

// DefaultMaxPasses is how many repair passes run before unresolved issues
// are declared terminal.
const DefaultMaxPasses = 2

// DurationTolerance is the floating-point tolerance for the path total
// consistency check.
const DurationTolerance = 1e-6

// Config carries the sub-component configurations the checker needs to
// recompute totals and re-run the difficulty pass during repair.
type Config struct {
	Timeest    timeest.Config
	Difficulty difficulty.Config
	MaxPasses  int
}

// DefaultConfig returns the standard checker configuration.
func DefaultConfig() Config {
	return Config{
		Timeest:    timeest.DefaultConfig(),
		Difficulty: difficulty.DefaultConfig(),
		MaxPasses:  DefaultMaxPasses,
	}
}

// Validate checks every invariant and returns all issues found. A path
// with no issues is valid; Validate on an already-valid path is
// idempotent and returns (true, nil).
func Validate(p learnpath.LearningPath, cfg Config) (bool, []Issue) {
	var issues []Issue

	for i, m := range p.Milestones {
		if m.ID != i {
			issues = append(issues, Issue{
				Category:       CategoryStructural,
				Code:           CodeBadMilestoneID,
				MilestoneIndex: i,
				Message:        fmt.Sprintf("milestone at index %d carries id %d", i, m.ID),
				Fixable:        true,
			})
		}
		if len(m.Resources) == 0 {
			issues = append(issues, Issue{
				Category:       CategoryContent,
				Code:           CodeMissingResources,
				MilestoneIndex: i,
				Message:        "milestone has no resources",
				Fixable:        true,
			})
		}
		if len(m.AssessmentCriteria) == 0 {
			issues = append(issues, Issue{
				Category:       CategoryContent,
				Code:           CodeMissingCriteria,
				MilestoneIndex: i,
				Message:        "milestone has no assessment criteria",
				Fixable:        true,
			})
		}
		for _, ref := range m.PrerequisiteIDs {
			if ref >= i || ref < 0 {
				issues = append(issues, Issue{
					Category:       CategoryStructural,
					Code:           CodeBadPrerequisiteRef,
					MilestoneIndex: i,
					Message:        fmt.Sprintf("prerequisite id %d does not precede index %d", ref, i),
					Fixable:        false,
				})
			}
		}
	}

	issues = append(issues, progressionIssues(p.Milestones)...)

	if !totalConsistent(p, cfg.Timeest) {
		issues = append(issues, Issue{
			Category:       CategoryTiming,
			Code:           CodeTotalMismatch,
			MilestoneIndex: -1,
			Message:        "total_estimated_duration does not equal the buffered milestone sum",
			Fixable:        true,
		})
	}

	return len(issues) == 0, issues
}

// progressionIssues checks the difficulty progression invariant: no drop
// of more than one level, and at most one single-level drop in any three
// consecutive milestones.
func progressionIssues(milestones []learnpath.Milestone) []Issue {
	var issues []Issue
	lastDrop := -10 // sentinel: no drop seen

	for i := 1; i < len(milestones); i++ {
		prev := milestones[i-1].Difficulty.Rank()
		cur := milestones[i].Difficulty.Rank()

		switch {
		case cur < prev-1:
			issues = append(issues, Issue{
				Category:       CategoryStructural,
				Code:           CodeProgression,
				MilestoneIndex: i,
				Message:        fmt.Sprintf("difficulty drops more than one level (%s to %s)", milestones[i-1].Difficulty, milestones[i].Difficulty),
				Fixable:        true,
			})
		case cur == prev-1:
			if i-lastDrop <= difficulty.ReviewDropWindow {
				issues = append(issues, Issue{
					Category:       CategoryStructural,
					Code:           CodeProgression,
					MilestoneIndex: i,
					Message:        "more than one review drop within three consecutive milestones",
					Fixable:        true,
				})
			}
			lastDrop = i
		}
	}
	return issues
}

// totalConsistent checks invariant 4: the path total equals the buffered
// sum of per-milestone durations within tolerance.
func totalConsistent(p learnpath.LearningPath, cfg timeest.Config) bool {
	var sum learnpath.Duration
	for _, m := range p.Milestones {
		sum = sum.Add(m.EstimatedDuration)
	}
	want := sum.Scale(1 + cfg.BufferFraction)

	return math.Abs(p.TotalDuration.EffortHours-want.EffortHours) <= DurationTolerance &&
		math.Abs(p.TotalDuration.CalendarDays-want.CalendarDays) <= DurationTolerance
}

package engine

import (
	"fmt"

	"github.com/abhisek/pathcraft/internal/pathcheck"
)

// ErrInvalidGoal indicates the goal text was rejected before any work
// was done.
type ErrInvalidGoal struct {
	Goal   string
	Reason string
}

func (e *ErrInvalidGoal) Error() string {
	return fmt.Sprintf("invalid goal: %s", e.Reason)
}

// ErrInvalidPreferences indicates the request preferences were rejected
// before any work was done.
type ErrInvalidPreferences struct {
	Reason string
}

func (e *ErrInvalidPreferences) Error() string {
	return fmt.Sprintf("invalid preferences: %s", e.Reason)
}

// ErrLowConfidence indicates the goal could not be mapped to any known
// domain with enough confidence, and degraded fallback is disabled.
type ErrLowConfidence struct {
	Goal       string
	BestDomain string
	Confidence float64
}

func (e *ErrLowConfidence) Error() string {
	if e.BestDomain == "" {
		return fmt.Sprintf("goal %q matched no known domain", e.Goal)
	}
	return fmt.Sprintf("goal %q matched domain %q with low confidence %.2f", e.Goal, e.BestDomain, e.Confidence)
}

// ErrDraftFailed indicates the drafter could not produce milestones and
// degraded fallback is disabled.
type ErrDraftFailed struct {
	Err error
}

func (e *ErrDraftFailed) Error() string {
	return fmt.Sprintf("path draft failed: %v", e.Err)
}

func (e *ErrDraftFailed) Unwrap() error { return e.Err }

// ErrValidationFailed indicates structural defects survived the repair
// passes. It carries the unresolved issues so callers can report the
// offending milestones.
type ErrValidationFailed struct {
	Issues []pathcheck.Issue
}

func (e *ErrValidationFailed) Error() string {
	return fmt.Sprintf("path validation failed with %d unresolved structural issues", len(e.Issues))
}

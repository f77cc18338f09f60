// Package draft is the engine's single external collaborator: it turns a
// goal plus learner context into raw milestone drafts. Drafts are
// deliberately incomplete — no difficulty tags, no duration estimates,
// possibly missing resources or criteria — the downstream pipeline
// assesses, estimates, and repairs them.
package draft

import (
	"context"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

// Input holds everything the drafter may use for one request.
type Input struct {
	// Goal is the learner's raw free-text goal.
	Goal string

	// Domain is the canonical domain key when the goal mapped, "" when
	// it did not. Context only; the drafter must handle both.
	Domain string

	// CurrentSkills is the learner's skill state, read-only.
	CurrentSkills map[string]learnpath.SkillRecord

	// Preferences carries the weekly time budget.
	Preferences learnpath.Preferences
}

// Drafter produces the ordered raw milestone sequence for a goal.
// Implementations make exactly one attempt per call; retry policy lives
// in the provider middleware, never here or above.
type Drafter interface {
	Draft(ctx context.Context, input Input) ([]learnpath.Milestone, error)
}

// Package engine orchestrates path generation: goal normalization,
// domain mapping, a single bounded draft call, prerequisite injection,
// difficulty assessment, time estimation, and final validation/repair.
// The engine owns sequencing and timeouts; retry policy belongs to the
// provider middleware underneath the drafter.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathcraft/internal/difficulty"
	"github.com/abhisek/pathcraft/internal/draft"
	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/pathcheck"
	"github.com/abhisek/pathcraft/internal/prereq"
	"github.com/abhisek/pathcraft/internal/taxonomy"
	"github.com/abhisek/pathcraft/internal/timeest"
)

// Request is one path generation request.
type Request struct {
	// Goal is the learner's raw free-text goal.
	Goal string

	// CurrentSkills is the learner's skill state, keyed by skill name.
	CurrentSkills map[string]learnpath.SkillRecord

	// Preferences carries the weekly time budget.
	Preferences learnpath.Preferences
}

// Result is the outcome of a successful generation.
type Result struct {
	Path        learnpath.LearningPath
	Match       taxonomy.Match
	Adjustments []difficulty.Adjustment
	Report      pathcheck.Report
}

// Engine runs the generation pipeline.
type Engine struct {
	taxonomy *taxonomy.Taxonomy
	drafter  draft.Drafter
	config   Config
}

// New creates an Engine over the given taxonomy and drafter.
func New(tax *taxonomy.Taxonomy, drafter draft.Drafter, cfg Config) *Engine {
	return &Engine{taxonomy: tax, drafter: drafter, config: cfg}
}

// GeneratePath runs the full pipeline for one request. The drafter is
// called exactly once; on failure the engine either errors out or, when
// degraded fallback is enabled, substitutes a minimal template path.
func (e *Engine) GeneratePath(ctx context.Context, req Request) (*Result, error) {
	goal, err := normalizeGoal(req.Goal, e.config.MaxGoalLength)
	if err != nil {
		return nil, err
	}
	if req.Preferences.WeeklyHours <= 0 {
		return nil, &ErrInvalidPreferences{Reason: fmt.Sprintf("weekly hours must be positive, got %v", req.Preferences.WeeklyHours)}
	}

	match := e.taxonomy.MatchGoal(goal, e.config.MatchThreshold)
	degraded := false
	if !match.Matched() {
		if !e.config.AllowDegradedFallback {
			return nil, &ErrLowConfidence{Goal: goal, BestDomain: match.Domain, Confidence: match.Confidence}
		}
		degraded = true
	}

	milestones, err := e.draftOnce(ctx, draft.Input{
		Goal:          goal,
		Domain:        match.Domain,
		CurrentSkills: req.CurrentSkills,
		Preferences:   req.Preferences,
	})
	if err != nil {
		if !e.config.AllowDegradedFallback {
			return nil, &ErrDraftFailed{Err: err}
		}
		milestones = fallbackMilestones(goal)
		degraded = true
	}

	if match.Matched() {
		domain, err := e.taxonomy.DomainByKey(match.Domain)
		if err != nil {
			return nil, fmt.Errorf("resolve matched domain: %w", err)
		}
		synth := prereq.Analyze(domain, req.CurrentSkills, e.config.Prereq)
		milestones = prepend(synth, milestones)
	}

	assessed, adjustments := difficulty.Assess(milestones, e.config.Difficulty)
	estimated, total := timeest.EstimatePath(assessed, req.Preferences.WeeklyHours, e.config.Timeest)

	path := learnpath.LearningPath{
		ID:            uuid.NewString(),
		Goal:          goal,
		Domain:        match.Domain,
		Milestones:    estimated,
		TotalDuration: total,
		CreatedAt:     time.Now().UTC(),
	}
	path.OverallDifficulty = path.DeriveOverallDifficulty()

	checked, report := pathcheck.Run(path, e.config.Check)
	if structural := report.UnresolvedStructural(); len(structural) > 0 {
		return nil, &ErrValidationFailed{Issues: structural}
	}

	switch {
	case degraded:
		checked.ValidationStatus = learnpath.StatusDegraded
	case report.Repaired():
		checked.ValidationStatus = learnpath.StatusRepaired
	default:
		checked.ValidationStatus = learnpath.StatusValid
	}

	return &Result{
		Path:        checked,
		Match:       match,
		Adjustments: adjustments,
		Report:      report,
	}, nil
}

// draftOnce makes the single drafter call under the configured timeout.
func (e *Engine) draftOnce(ctx context.Context, input draft.Input) ([]learnpath.Milestone, error) {
	if e.config.DraftTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.DraftTimeout)
		defer cancel()
	}
	return e.drafter.Draft(ctx, input)
}

// normalizeGoal trims and collapses whitespace, rejecting empty or
// oversized input.
func normalizeGoal(raw string, maxLen int) (string, error) {
	goal := strings.Join(strings.Fields(raw), " ")
	if goal == "" {
		return "", &ErrInvalidGoal{Goal: raw, Reason: "goal is empty"}
	}
	if maxLen > 0 && len(goal) > maxLen {
		return "", &ErrInvalidGoal{Goal: raw, Reason: fmt.Sprintf("goal exceeds %d characters", maxLen)}
	}
	return goal, nil
}

// prepend places the synthesized prerequisite milestones before the
// drafted ones, renumbering IDs sequentially and chaining the first
// drafted milestone onto the last prerequisite.
func prepend(synth, drafted []learnpath.Milestone) []learnpath.Milestone {
	if len(synth) == 0 {
		return drafted
	}

	offset := len(synth)
	out := make([]learnpath.Milestone, 0, offset+len(drafted))
	out = append(out, synth...)

	for i, m := range drafted {
		m = m.Clone()
		m.ID = offset + i
		for j, ref := range m.PrerequisiteIDs {
			m.PrerequisiteIDs[j] = ref + offset
		}
		if i == 0 && len(m.PrerequisiteIDs) == 0 {
			m.PrerequisiteIDs = []int{offset - 1}
		}
		out = append(out, m)
	}
	return out
}

// Package prereq synthesizes prerequisite milestones for the gap between a
// domain's foundational skill requirements and the learner's current skills.
package prereq

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/taxonomy"
)

// Config holds the tunables for synthesized milestones. The hour values
// are heuristics; they are named here rather than inlined so they can be
// overridden and tested independently.
type Config struct {
	// FullModuleHours is the effort budget for a full prerequisite
	// milestone (the skill is absent from the learner's record).
	FullModuleHours float64

	// Reinforcement milestones (skill present but below the required
	// level) get half the effort of a full module.

	// ResourcesPerMilestone is how many curated-later resource slots a
	// synthesized milestone starts with.
	ResourcesPerMilestone int
}

// DefaultConfig returns the standard synthesis tunables.
func DefaultConfig() Config {
	return Config{
		FullModuleHours:       12,
		ResourcesPerMilestone: 2,
	}
}

// Analyze compares the domain's required skills against the learner's
// current skills and synthesizes one milestone per unmet requirement, in
// the domain's declared dependency order:
//
//   - skill absent            → full milestone, beginner difficulty
//   - skill below min level   → reinforcement milestone at half effort
//   - skill at or above level → nothing
//
// Each synthesized milestone chains to the immediately preceding
// synthesized one (a chain, not a DAG, keeps ordering trivially valid).
// Milestone IDs are provisional 0..n-1; the orchestrator renumbers the
// full sequence after prepending.
func Analyze(domain taxonomy.Domain, current map[string]learnpath.SkillRecord, cfg Config) []learnpath.Milestone {
	var out []learnpath.Milestone

	for _, req := range domain.Skills {
		rec, known := lookupSkill(current, req.Name)

		if known && rec.Level.Rank() >= req.MinLevel.Rank() {
			continue // requirement met, nothing to synthesize
		}

		m := learnpath.Milestone{
			ID:           len(out),
			Title:        req.Title,
			Description:  req.Description,
			TargetSkills: []string{req.Name},
			Difficulty:   learnpath.LevelBeginner,
			Resources:    placeholderResources(req, cfg.ResourcesPerMilestone),
			AssessmentCriteria: []string{
				fmt.Sprintf("Demonstrate working knowledge of %s at the %s level", req.Name, req.MinLevel),
			},
			Synthesized: true,
			Status:      learnpath.StatusNotStarted,
		}

		if known {
			// Reinforcement: the learner has seen this before.
			m.Title = req.Title + " (Review)"
			m.Description = fmt.Sprintf("Refresh and consolidate %s before moving on. %s", req.Name, req.Description)
			m.EstimatedDuration.EffortHours = cfg.FullModuleHours / 2
		} else {
			m.EstimatedDuration.EffortHours = cfg.FullModuleHours
		}

		if n := len(out); n > 0 {
			m.PrerequisiteIDs = []int{out[n-1].ID}
		}
		out = append(out, m)
	}

	return out
}

// lookupSkill finds a skill record by case-insensitive name.
func lookupSkill(current map[string]learnpath.SkillRecord, name string) (learnpath.SkillRecord, bool) {
	if rec, ok := current[name]; ok {
		return rec, true
	}
	lower := strings.ToLower(name)
	for k, rec := range current {
		if strings.ToLower(k) == lower {
			return rec, true
		}
	}
	return learnpath.SkillRecord{}, false
}

// placeholderResources seeds a synthesized milestone with generic free
// resources pointing at the skill. These are real starting points rather
// than repair placeholders, so they are not flagged needs_curation.
func placeholderResources(req taxonomy.RequiredSkill, count int) []learnpath.Resource {
	kinds := []learnpath.ResourceType{learnpath.ResourceCourse, learnpath.ResourceTutorial, learnpath.ResourceVideo}
	query := strings.ReplaceAll(strings.ToLower(req.Name), " ", "+")

	out := make([]learnpath.Resource, 0, count)
	for i := 0; i < count; i++ {
		kind := kinds[i%len(kinds)]
		out = append(out, learnpath.Resource{
			Title: fmt.Sprintf("%s — introductory %s", req.Title, kind),
			URL:   fmt.Sprintf("https://www.google.com/search?q=%s+beginner+%s", query, kind),
			Type:  kind,
			Free:  true,
		})
	}
	return out
}

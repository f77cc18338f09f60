package pathcheck

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathcraft/internal/difficulty"
	"github.com/abhisek/pathcraft/internal/learnpath"
)

// Repair applies every fixable repair for the given issues and returns a
// new path plus the fixes applied. Unfixable issues are left untouched;
// callers re-validate to discover what remains.
func Repair(p learnpath.LearningPath, issues []Issue, cfg Config) (learnpath.LearningPath, []Fix) {
	out := p.Clone()
	var fixes []Fix

	needsDifficultyPass := false
	needsTotalRecompute := false

	for _, issue := range issues {
		if !issue.Fixable {
			continue
		}
		switch issue.Code {
		case CodeBadMilestoneID:
			// Handled once below; renumbering is global.
		case CodeMissingResources:
			i := issue.MilestoneIndex
			out.Milestones[i].Resources = append(out.Milestones[i].Resources, placeholderResource(out.Milestones[i]))
			fixes = append(fixes, Fix{
				Code:           CodeMissingResources,
				MilestoneIndex: i,
				Message:        "inserted placeholder resource flagged needs_curation",
			})
		case CodeMissingCriteria:
			i := issue.MilestoneIndex
			out.Milestones[i].AssessmentCriteria = append(out.Milestones[i].AssessmentCriteria, defaultCriterion(out.Milestones[i]))
			fixes = append(fixes, Fix{
				Code:           CodeMissingCriteria,
				MilestoneIndex: i,
				Message:        "synthesized default self-assessment criterion",
			})
		case CodeProgression:
			needsDifficultyPass = true
		case CodeTotalMismatch:
			needsTotalRecompute = true
		}
	}

	if hasCode(issues, CodeBadMilestoneID) {
		out = renumber(out)
		fixes = append(fixes, Fix{
			Code:           CodeBadMilestoneID,
			MilestoneIndex: -1,
			Message:        "renumbered milestone ids to match sequence order",
		})
	}

	if needsDifficultyPass {
		adjusted, _ := difficulty.Assess(out.Milestones, cfg.Difficulty)
		out.Milestones = adjusted
		out.OverallDifficulty = out.DeriveOverallDifficulty()
		fixes = append(fixes, Fix{
			Code:           CodeProgression,
			MilestoneIndex: -1,
			Message:        "re-ran difficulty progression pass",
		})
	}

	if needsTotalRecompute {
		var sum learnpath.Duration
		for _, m := range out.Milestones {
			sum = sum.Add(m.EstimatedDuration)
		}
		out.TotalDuration = sum.Scale(1 + cfg.Timeest.BufferFraction)
		fixes = append(fixes, Fix{
			Code:           CodeTotalMismatch,
			MilestoneIndex: -1,
			Message:        "recomputed total_estimated_duration from milestone sum",
		})
	}

	return out, fixes
}

// Run validates, repairs what it can, and repeats up to cfg.MaxPasses
// times. The returned report carries the applied fixes and whatever
// remains unresolved after the final validation.
func Run(p learnpath.LearningPath, cfg Config) (learnpath.LearningPath, Report) {
	var report Report

	current := p
	for pass := 0; pass < cfg.MaxPasses; pass++ {
		ok, issues := Validate(current, cfg)
		if ok {
			report.Unresolved = nil
			return current, report
		}
		report.Passes = pass + 1

		var fixes []Fix
		current, fixes = Repair(current, issues, cfg)
		report.Applied = append(report.Applied, fixes...)
	}

	_, remaining := Validate(current, cfg)
	report.Unresolved = remaining
	return current, report
}

func hasCode(issues []Issue, code string) bool {
	for _, i := range issues {
		if i.Code == code && i.Fixable {
			return true
		}
	}
	return false
}

// renumber rewrites milestone ids to sequence order, remapping
// prerequisite references through the same mapping.
func renumber(p learnpath.LearningPath) learnpath.LearningPath {
	mapping := make(map[int]int, len(p.Milestones))
	for i, m := range p.Milestones {
		mapping[m.ID] = i
	}
	for i := range p.Milestones {
		p.Milestones[i].ID = i
		for j, ref := range p.Milestones[i].PrerequisiteIDs {
			if to, ok := mapping[ref]; ok {
				p.Milestones[i].PrerequisiteIDs[j] = to
			}
		}
	}
	return p
}

func placeholderResource(m learnpath.Milestone) learnpath.Resource {
	topic := m.Title
	if len(m.TargetSkills) > 0 {
		topic = strings.Join(m.TargetSkills, " ")
	}
	return learnpath.Resource{
		Title:         fmt.Sprintf("Curated material for %s (pending)", m.Title),
		URL:           "https://www.google.com/search?q=" + strings.ReplaceAll(strings.ToLower(topic), " ", "+"),
		Type:          learnpath.ResourceArticle,
		Free:          true,
		NeedsCuration: true,
	}
}

func defaultCriterion(m learnpath.Milestone) string {
	if len(m.TargetSkills) > 0 {
		return fmt.Sprintf("Self-assessment: explain and apply %s without reference material", strings.Join(m.TargetSkills, ", "))
	}
	return fmt.Sprintf("Self-assessment: complete all learning materials for %s", m.Title)
}

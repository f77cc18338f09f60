package engine

import (
	"fmt"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

// fallbackMilestones builds the minimal template path used when the
// drafter is unavailable and degraded fallback is enabled. A single
// self-directed milestone with a curation placeholder; the downstream
// passes fill in difficulty and duration.
func fallbackMilestones(goal string) []learnpath.Milestone {
	return []learnpath.Milestone{
		{
			ID:           0,
			Title:        fmt.Sprintf("Getting started: %s", goal),
			Description:  fmt.Sprintf("Survey the landscape for %q, pick an introductory course, and work through it end to end.", goal),
			TargetSkills: []string{goal},
			Resources: []learnpath.Resource{
				{
					Title:         fmt.Sprintf("Find an introductory course for %s", goal),
					Type:          learnpath.ResourceCourse,
					Free:          true,
					NeedsCuration: true,
				},
			},
			AssessmentCriteria: []string{
				fmt.Sprintf("Complete an introductory course or tutorial on %s", goal),
			},
			Status: learnpath.StatusNotStarted,
		},
	}
}

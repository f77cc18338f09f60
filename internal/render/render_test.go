package render

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

func samplePath() learnpath.LearningPath {
	return learnpath.LearningPath{
		ID:     "test-path",
		Goal:   "become a web developer",
		Domain: "web_development",
		Milestones: []learnpath.Milestone{
			{
				ID:           0,
				Title:        "HTML Foundations",
				Description:  "Structure pages with semantic HTML.",
				TargetSkills: []string{"html"},
				Difficulty:   learnpath.LevelBeginner,
				EstimatedDuration: learnpath.Duration{
					EffortHours:  12,
					CalendarDays: 8.4,
				},
				Resources: []learnpath.Resource{
					{Title: "MDN HTML Guide", URL: "https://developer.mozilla.org/x", Type: learnpath.ResourceArticle, Free: true},
				},
				AssessmentCriteria: []string{"Build a static site"},
				Synthesized:        true,
				Status:             learnpath.StatusNotStarted,
			},
			{
				ID:          1,
				Title:       "Build a Portfolio",
				Difficulty:  learnpath.LevelIntermediate,
				EstimatedDuration: learnpath.Duration{
					EffortHours:  20,
					CalendarDays: 14,
				},
				Resources: []learnpath.Resource{
					{Title: "Find a project course", Type: learnpath.ResourceCourse, NeedsCuration: true},
				},
				AssessmentCriteria: []string{"Deploy the site"},
				Status:             learnpath.StatusNotStarted,
			},
		},
		TotalDuration:     learnpath.Duration{EffortHours: 36.8, CalendarDays: 25.76},
		OverallDifficulty: learnpath.LevelIntermediate,
		CreatedAt:         time.Now().UTC(),
		ValidationStatus:  learnpath.StatusValid,
	}
}

func TestPathRendersContent(t *testing.T) {
	out := Path(samplePath())

	for _, want := range []string{
		"become a web developer",
		"web_development",
		"valid",
		"1. HTML Foundations *", // synthesized marker
		"2. Build a Portfolio",
		"MDN HTML Guide",
		"[needs curation]",
		"Done when: ",
		"Build a static site",
		"Total: 37h effort",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPathOmitsEmptySections(t *testing.T) {
	p := samplePath()
	p.Domain = ""
	p.Milestones[1].Description = ""

	out := Path(p)

	if strings.Contains(out, "Domain:") {
		t.Error("empty domain should not be rendered")
	}
}

func TestDaysFormatting(t *testing.T) {
	if got := days(10); got != "10 days" {
		t.Errorf("days(10) = %q", got)
	}
	if got := days(28); got != "4 weeks" {
		t.Errorf("days(28) = %q", got)
	}
}

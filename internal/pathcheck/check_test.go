package pathcheck

import (
	"testing"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

// validPath builds a small path that satisfies every invariant.
func validPath() learnpath.LearningPath {
	milestones := []learnpath.Milestone{
		{
			ID:                 0,
			Title:              "HTML Foundations",
			TargetSkills:       []string{"html"},
			Difficulty:         learnpath.LevelBeginner,
			EstimatedDuration:  learnpath.Duration{EffortHours: 10, CalendarDays: 7},
			Resources:          []learnpath.Resource{{Title: "r", URL: "u", Type: learnpath.ResourceCourse}},
			AssessmentCriteria: []string{"build a page"},
			Status:             learnpath.StatusNotStarted,
		},
		{
			ID:                 1,
			Title:              "CSS Layout",
			TargetSkills:       []string{"css"},
			Difficulty:         learnpath.LevelIntermediate,
			EstimatedDuration:  learnpath.Duration{EffortHours: 12, CalendarDays: 8},
			Resources:          []learnpath.Resource{{Title: "r", URL: "u", Type: learnpath.ResourceCourse}},
			AssessmentCriteria: []string{"style a page"},
			PrerequisiteIDs:    []int{0},
			Status:             learnpath.StatusNotStarted,
		},
	}

	p := learnpath.LearningPath{
		ID:         "test-path",
		Goal:       "become a web developer",
		Domain:     "web_development",
		Milestones: milestones,
	}

	cfg := DefaultConfig()
	var sum learnpath.Duration
	for _, m := range milestones {
		sum = sum.Add(m.EstimatedDuration)
	}
	p.TotalDuration = sum.Scale(1 + cfg.Timeest.BufferFraction)
	p.OverallDifficulty = p.DeriveOverallDifficulty()
	return p
}

func TestValidate_ValidPathIsIdempotent(t *testing.T) {
	p := validPath()
	cfg := DefaultConfig()

	for pass := 0; pass < 2; pass++ {
		ok, issues := Validate(p, cfg)
		if !ok || len(issues) != 0 {
			t.Fatalf("pass %d: expected valid with no issues, got ok=%v issues=%v", pass, ok, issues)
		}
	}
}

func TestValidate_FlagsMissingContent(t *testing.T) {
	p := validPath()
	p.Milestones[0].Resources = nil
	p.Milestones[1].AssessmentCriteria = nil

	ok, issues := Validate(p, DefaultConfig())
	if ok {
		t.Fatal("expected invalid")
	}

	wantCodes := map[string]Category{
		CodeMissingResources: CategoryContent,
		CodeMissingCriteria:  CategoryContent,
	}
	for code, cat := range wantCodes {
		found := false
		for _, i := range issues {
			if i.Code == code {
				found = true
				if i.Category != cat {
					t.Errorf("%s: expected category %s, got %s", code, cat, i.Category)
				}
				if !i.Fixable {
					t.Errorf("%s should be fixable", code)
				}
			}
		}
		if !found {
			t.Errorf("expected issue %s, got %v", code, issues)
		}
	}
}

func TestValidate_ForwardReferenceIsUnfixableStructural(t *testing.T) {
	p := validPath()
	p.Milestones[0].PrerequisiteIDs = []int{1} // forward reference

	ok, issues := Validate(p, DefaultConfig())
	if ok {
		t.Fatal("expected invalid")
	}

	found := false
	for _, i := range issues {
		if i.Code == CodeBadPrerequisiteRef {
			found = true
			if i.Category != CategoryStructural || i.Fixable {
				t.Errorf("expected unfixable STRUCTURAL, got %+v", i)
			}
		}
	}
	if !found {
		t.Errorf("expected %s issue, got %v", CodeBadPrerequisiteRef, issues)
	}
}

func TestValidate_SelfReferenceRejected(t *testing.T) {
	p := validPath()
	p.Milestones[1].PrerequisiteIDs = []int{1}

	ok, issues := Validate(p, DefaultConfig())
	if ok {
		t.Fatalf("self reference accepted: %v", issues)
	}
}

func TestValidate_TotalMismatchIsFixableTiming(t *testing.T) {
	p := validPath()
	p.TotalDuration.EffortHours += 5

	ok, issues := Validate(p, DefaultConfig())
	if ok {
		t.Fatal("expected invalid")
	}
	if len(issues) != 1 || issues[0].Code != CodeTotalMismatch || issues[0].Category != CategoryTiming || !issues[0].Fixable {
		t.Errorf("unexpected issues: %v", issues)
	}
}

func TestValidate_ProgressionViolations(t *testing.T) {
	p := validPath()
	p.Milestones[1].Difficulty = learnpath.LevelBeginner
	p.Milestones[0].Difficulty = learnpath.LevelAdvanced // advanced -> beginner: 2-level drop

	ok, issues := Validate(p, DefaultConfig())
	if ok {
		t.Fatal("expected invalid")
	}
	found := false
	for _, i := range issues {
		if i.Code == CodeProgression && i.Category == CategoryStructural && i.Fixable {
			found = true
		}
	}
	if !found {
		t.Errorf("expected fixable STRUCTURAL progression issue, got %v", issues)
	}
}

func TestValidate_SingleReviewDropAllowed(t *testing.T) {
	p := validPath()
	// intermediate -> beginner is a single-level review drop.
	p.Milestones[0].Difficulty = learnpath.LevelIntermediate
	p.Milestones[1].Difficulty = learnpath.LevelBeginner

	ok, issues := Validate(p, DefaultConfig())
	if !ok {
		t.Errorf("single review drop should be valid, got %v", issues)
	}
}

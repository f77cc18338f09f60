package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathcraft/internal/draft"
	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/taxonomy"
)

// draftedMilestones returns a small valid draft for a web goal.
func draftedMilestones() []learnpath.Milestone {
	return []learnpath.Milestone{
		{
			ID:           0,
			Title:        "JavaScript Essentials",
			Description:  "Core language features and DOM scripting.",
			TargetSkills: []string{"javascript"},
			Resources: []learnpath.Resource{
				{Title: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Type: learnpath.ResourceArticle, Free: true},
			},
			AssessmentCriteria: []string{"Build an interactive page without a framework"},
			Status:             learnpath.StatusNotStarted,
		},
		{
			ID:           1,
			Title:        "Build a Responsive Portfolio Project",
			Description:  "Put everything together in a deployed site.",
			TargetSkills: []string{"responsive design"},
			Resources: []learnpath.Resource{
				{Title: "web.dev Learn Responsive Design", URL: "https://web.dev/learn/design", Type: learnpath.ResourceCourse, Free: true},
			},
			AssessmentCriteria: []string{"Deploy a responsive portfolio site"},
			Status:             learnpath.StatusNotStarted,
		},
	}
}

func newTestEngine(t *testing.T, drafter draft.Drafter, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(taxonomy.Default(), drafter, cfg)
}

func TestGeneratePath_BeginnerGetsPrerequisites(t *testing.T) {
	drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
	e := newTestEngine(t, drafter, nil)

	res, err := e.GeneratePath(context.Background(), Request{
		Goal:        "become a web developer",
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})
	if err != nil {
		t.Fatalf("GeneratePath: %v", err)
	}

	p := res.Path
	if p.Domain != "web_development" {
		t.Errorf("domain = %q", p.Domain)
	}
	// Three synthesized prerequisites (html, css, javascript) before the
	// two drafted milestones.
	if len(p.Milestones) != 5 {
		t.Fatalf("got %d milestones, want 5", len(p.Milestones))
	}
	for i, m := range p.Milestones {
		if m.ID != i {
			t.Errorf("milestone %d has id %d", i, m.ID)
		}
		wantSynth := i < 3
		if m.Synthesized != wantSynth {
			t.Errorf("milestone %d synthesized = %t, want %t", i, m.Synthesized, wantSynth)
		}
	}
	// First drafted milestone chains onto the last prerequisite.
	first := p.Milestones[3]
	if len(first.PrerequisiteIDs) != 1 || first.PrerequisiteIDs[0] != 2 {
		t.Errorf("first drafted prereqs = %v, want [2]", first.PrerequisiteIDs)
	}
	if p.ValidationStatus != learnpath.StatusValid {
		t.Errorf("status = %q, want valid (report: %+v)", p.ValidationStatus, res.Report)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Error("path missing id or timestamp")
	}
	if drafter.Calls[0].Domain != "web_development" {
		t.Errorf("drafter saw domain %q", drafter.Calls[0].Domain)
	}
}

func TestGeneratePath_MetSkillsSkipPrerequisites(t *testing.T) {
	drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
	e := newTestEngine(t, drafter, nil)

	res, err := e.GeneratePath(context.Background(), Request{
		Goal: "become a web developer",
		CurrentSkills: map[string]learnpath.SkillRecord{
			"html":       {Name: "html", Level: learnpath.LevelIntermediate},
			"css":        {Name: "css", Level: learnpath.LevelBeginner},
			"javascript": {Name: "javascript", Level: learnpath.LevelAdvanced},
		},
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})
	if err != nil {
		t.Fatalf("GeneratePath: %v", err)
	}

	if len(res.Path.Milestones) != 2 {
		t.Fatalf("got %d milestones, want 2 (no prerequisites)", len(res.Path.Milestones))
	}
	for _, m := range res.Path.Milestones {
		if m.Synthesized {
			t.Errorf("unexpected synthesized milestone %q", m.Title)
		}
	}
}

func TestGeneratePath_WeeklyHoursStretchCalendar(t *testing.T) {
	gen := func(hours float64) *Result {
		drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
		e := newTestEngine(t, drafter, nil)
		res, err := e.GeneratePath(context.Background(), Request{
			Goal:        "become a web developer",
			Preferences: learnpath.Preferences{WeeklyHours: hours},
		})
		if err != nil {
			t.Fatalf("GeneratePath(%v h/week): %v", hours, err)
		}
		return res
	}

	slow := gen(5)
	fast := gen(20)

	if slow.Path.TotalDuration.EffortHours != fast.Path.TotalDuration.EffortHours {
		t.Errorf("effort differs: %v vs %v", slow.Path.TotalDuration.EffortHours, fast.Path.TotalDuration.EffortHours)
	}
	if slow.Path.TotalDuration.CalendarDays <= fast.Path.TotalDuration.CalendarDays {
		t.Errorf("slow calendar %v not longer than fast %v",
			slow.Path.TotalDuration.CalendarDays, fast.Path.TotalDuration.CalendarDays)
	}
}

func TestGeneratePath_Deterministic(t *testing.T) {
	gen := func() *Result {
		drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
		e := newTestEngine(t, drafter, nil)
		res, err := e.GeneratePath(context.Background(), Request{
			Goal:        "become a web developer",
			Preferences: learnpath.Preferences{WeeklyHours: 10},
		})
		if err != nil {
			t.Fatalf("GeneratePath: %v", err)
		}
		return res
	}

	a, b := gen(), gen()

	if len(a.Path.Milestones) != len(b.Path.Milestones) {
		t.Fatalf("milestone counts differ: %d vs %d", len(a.Path.Milestones), len(b.Path.Milestones))
	}
	for i := range a.Path.Milestones {
		am, bm := a.Path.Milestones[i], b.Path.Milestones[i]
		if am.Difficulty != bm.Difficulty || am.EstimatedDuration != bm.EstimatedDuration {
			t.Errorf("milestone %d differs: %+v vs %+v", i, am, bm)
		}
	}
	if a.Path.TotalDuration != b.Path.TotalDuration {
		t.Errorf("totals differ: %+v vs %+v", a.Path.TotalDuration, b.Path.TotalDuration)
	}
}

func TestGeneratePath_UnknownDomainFatal(t *testing.T) {
	drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
	e := newTestEngine(t, drafter, nil)

	_, err := e.GeneratePath(context.Background(), Request{
		Goal:        "underwater basket weaving",
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})

	var lowConf *ErrLowConfidence
	if !errors.As(err, &lowConf) {
		t.Fatalf("err = %v, want ErrLowConfidence", err)
	}
	if len(drafter.Calls) != 0 {
		t.Error("drafter should not be called when mapping fails fatally")
	}
}

func TestGeneratePath_UnknownDomainDegraded(t *testing.T) {
	drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
	e := newTestEngine(t, drafter, func(c *Config) { c.AllowDegradedFallback = true })

	res, err := e.GeneratePath(context.Background(), Request{
		Goal:        "underwater basket weaving",
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})
	if err != nil {
		t.Fatalf("GeneratePath: %v", err)
	}

	if res.Path.Domain != "" {
		t.Errorf("domain = %q, want empty", res.Path.Domain)
	}
	if res.Path.ValidationStatus != learnpath.StatusDegraded {
		t.Errorf("status = %q, want degraded", res.Path.ValidationStatus)
	}
	// No taxonomy match means no prerequisite injection.
	for _, m := range res.Path.Milestones {
		if m.Synthesized {
			t.Errorf("unexpected synthesized milestone %q", m.Title)
		}
	}
}

func TestGeneratePath_DraftFailureFatal(t *testing.T) {
	cause := errors.New("provider down")
	drafter := &draft.MockDrafter{Err: cause}
	e := newTestEngine(t, drafter, nil)

	_, err := e.GeneratePath(context.Background(), Request{
		Goal:        "become a web developer",
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})

	var draftErr *ErrDraftFailed
	if !errors.As(err, &draftErr) {
		t.Fatalf("err = %v, want ErrDraftFailed", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause not wrapped: %v", err)
	}
	if len(drafter.Calls) != 1 {
		t.Errorf("drafter called %d times, want exactly 1", len(drafter.Calls))
	}
}

func TestGeneratePath_DraftFailureFallback(t *testing.T) {
	drafter := &draft.MockDrafter{Err: errors.New("provider down")}
	e := newTestEngine(t, drafter, func(c *Config) { c.AllowDegradedFallback = true })

	res, err := e.GeneratePath(context.Background(), Request{
		Goal:        "become a web developer",
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})
	if err != nil {
		t.Fatalf("GeneratePath: %v", err)
	}

	if res.Path.ValidationStatus != learnpath.StatusDegraded {
		t.Errorf("status = %q, want degraded", res.Path.ValidationStatus)
	}
	// Prerequisites still injected before the template milestone.
	var template *learnpath.Milestone
	for i := range res.Path.Milestones {
		if !res.Path.Milestones[i].Synthesized {
			template = &res.Path.Milestones[i]
			break
		}
	}
	if template == nil {
		t.Fatal("no template milestone in fallback path")
	}
	if !strings.HasPrefix(template.Title, "Getting started") {
		t.Errorf("template title = %q", template.Title)
	}
	if len(template.Resources) == 0 || !template.Resources[0].NeedsCuration {
		t.Errorf("template resource should need curation: %+v", template.Resources)
	}
}

func TestGeneratePath_RepairsIncompleteDraft(t *testing.T) {
	milestones := draftedMilestones()
	milestones[1].Resources = nil
	milestones[1].AssessmentCriteria = nil
	drafter := &draft.MockDrafter{Milestones: milestones}
	e := newTestEngine(t, drafter, nil)

	res, err := e.GeneratePath(context.Background(), Request{
		Goal: "become a web developer",
		CurrentSkills: map[string]learnpath.SkillRecord{
			"html":       {Name: "html", Level: learnpath.LevelBeginner},
			"css":        {Name: "css", Level: learnpath.LevelBeginner},
			"javascript": {Name: "javascript", Level: learnpath.LevelIntermediate},
		},
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})
	if err != nil {
		t.Fatalf("GeneratePath: %v", err)
	}

	if res.Path.ValidationStatus != learnpath.StatusRepaired {
		t.Fatalf("status = %q, want repaired (report: %+v)", res.Path.ValidationStatus, res.Report)
	}
	last := res.Path.Milestones[len(res.Path.Milestones)-1]
	if len(last.Resources) == 0 || !last.Resources[0].NeedsCuration {
		t.Errorf("repaired milestone missing placeholder resource: %+v", last.Resources)
	}
	if len(last.AssessmentCriteria) == 0 {
		t.Error("repaired milestone missing default criterion")
	}
}

func TestGeneratePath_ForwardReferenceFatal(t *testing.T) {
	milestones := draftedMilestones()
	milestones[0].PrerequisiteIDs = []int{1}
	drafter := &draft.MockDrafter{Milestones: milestones}
	e := newTestEngine(t, drafter, nil)

	_, err := e.GeneratePath(context.Background(), Request{
		Goal: "become a web developer",
		CurrentSkills: map[string]learnpath.SkillRecord{
			"html":       {Name: "html", Level: learnpath.LevelAdvanced},
			"css":        {Name: "css", Level: learnpath.LevelAdvanced},
			"javascript": {Name: "javascript", Level: learnpath.LevelAdvanced},
		},
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})

	var valErr *ErrValidationFailed
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if len(valErr.Issues) == 0 {
		t.Error("error carries no unresolved issues")
	}
}

func TestGeneratePath_RejectsNonPositiveHours(t *testing.T) {
	drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
	e := newTestEngine(t, drafter, nil)

	for _, hours := range []float64{0, -5} {
		_, err := e.GeneratePath(context.Background(), Request{
			Goal:        "become a web developer",
			Preferences: learnpath.Preferences{WeeklyHours: hours},
		})
		var invalid *ErrInvalidPreferences
		if !errors.As(err, &invalid) {
			t.Errorf("hours %v: err = %v, want ErrInvalidPreferences", hours, err)
		}
	}
	if len(drafter.Calls) != 0 {
		t.Error("drafter should not be called for invalid preferences")
	}
}

func TestGeneratePath_NormalizesGoal(t *testing.T) {
	drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
	e := newTestEngine(t, drafter, nil)

	res, err := e.GeneratePath(context.Background(), Request{
		Goal:        "  become   a\tweb developer ",
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	})
	if err != nil {
		t.Fatalf("GeneratePath: %v", err)
	}
	if res.Path.Goal != "become a web developer" {
		t.Errorf("goal = %q", res.Path.Goal)
	}
}

func TestGeneratePath_RejectsBadGoals(t *testing.T) {
	drafter := &draft.MockDrafter{Milestones: draftedMilestones()}
	e := newTestEngine(t, drafter, nil)

	for _, goal := range []string{"", "   \t  ", strings.Repeat("x", 600)} {
		_, err := e.GeneratePath(context.Background(), Request{Goal: goal})
		var invalid *ErrInvalidGoal
		if !errors.As(err, &invalid) {
			t.Errorf("goal %q: err = %v, want ErrInvalidGoal", goal, err)
		}
	}
	if len(drafter.Calls) != 0 {
		t.Error("drafter should not be called for invalid goals")
	}
}

package pathcheck

import (
	"testing"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

func TestRepair_InsertsPlaceholderContent(t *testing.T) {
	p := validPath()
	p.Milestones[0].Resources = nil
	p.Milestones[0].AssessmentCriteria = nil

	_, issues := Validate(p, DefaultConfig())
	fixed, fixes := Repair(p, issues, DefaultConfig())

	if len(fixed.Milestones[0].Resources) != 1 {
		t.Fatalf("expected 1 placeholder resource, got %d", len(fixed.Milestones[0].Resources))
	}
	if !fixed.Milestones[0].Resources[0].NeedsCuration {
		t.Error("placeholder resource should be flagged needs_curation")
	}
	if len(fixed.Milestones[0].AssessmentCriteria) != 1 {
		t.Errorf("expected 1 default criterion, got %d", len(fixed.Milestones[0].AssessmentCriteria))
	}
	if len(fixes) != 2 {
		t.Errorf("expected 2 fixes recorded, got %v", fixes)
	}

	// The original path is untouched.
	if len(p.Milestones[0].Resources) != 0 {
		t.Error("Repair mutated its input")
	}
}

func TestRepair_RecomputesTotal(t *testing.T) {
	p := validPath()
	want := p.TotalDuration
	p.TotalDuration = learnpath.Duration{EffortHours: 999, CalendarDays: 999}

	_, issues := Validate(p, DefaultConfig())
	fixed, _ := Repair(p, issues, DefaultConfig())

	if fixed.TotalDuration != want {
		t.Errorf("recomputed total %+v, expected %+v", fixed.TotalDuration, want)
	}
}

func TestRepair_ProgressionRerunsAssessor(t *testing.T) {
	p := validPath()
	p.Milestones[0].Difficulty = learnpath.LevelAdvanced
	p.Milestones[1].Difficulty = learnpath.LevelBeginner // 2-level drop

	_, issues := Validate(p, DefaultConfig())
	fixed, _ := Repair(p, issues, DefaultConfig())

	if fixed.Milestones[1].Difficulty != learnpath.LevelAdvanced {
		t.Errorf("expected clamp to advanced, got %q", fixed.Milestones[1].Difficulty)
	}
	if fixed.OverallDifficulty != learnpath.LevelAdvanced {
		t.Errorf("overall difficulty not rederived: %q", fixed.OverallDifficulty)
	}
}

func TestRepair_RenumbersMilestoneIDs(t *testing.T) {
	p := validPath()
	p.Milestones[0].ID = 7
	p.Milestones[1].ID = 9
	p.Milestones[1].PrerequisiteIDs = []int{7}

	_, issues := Validate(p, DefaultConfig())
	fixed, _ := Repair(p, issues, DefaultConfig())

	if fixed.Milestones[0].ID != 0 || fixed.Milestones[1].ID != 1 {
		t.Errorf("ids not renumbered: %d, %d", fixed.Milestones[0].ID, fixed.Milestones[1].ID)
	}
	if len(fixed.Milestones[1].PrerequisiteIDs) != 1 || fixed.Milestones[1].PrerequisiteIDs[0] != 0 {
		t.Errorf("prerequisite refs not remapped: %v", fixed.Milestones[1].PrerequisiteIDs)
	}
}

func TestRun_RepairsThenConverges(t *testing.T) {
	p := validPath()
	p.Milestones[0].Resources = nil
	p.TotalDuration.CalendarDays -= 3

	fixed, report := Run(p, DefaultConfig())

	if !report.Repaired() {
		t.Fatal("expected repairs to be applied")
	}
	if len(report.Unresolved) != 0 {
		t.Fatalf("expected convergence, unresolved: %v", report.Unresolved)
	}
	if ok, issues := Validate(fixed, DefaultConfig()); !ok {
		t.Errorf("repaired path still invalid: %v", issues)
	}
}

func TestRun_ValidPathUntouched(t *testing.T) {
	p := validPath()
	fixed, report := Run(p, DefaultConfig())

	if report.Repaired() || report.Passes != 0 {
		t.Errorf("expected no repairs on valid path, got %+v", report)
	}
	if len(fixed.Milestones) != len(p.Milestones) {
		t.Error("path changed without repairs")
	}
}

func TestRun_UnfixableStructuralSurvives(t *testing.T) {
	p := validPath()
	p.Milestones[0].PrerequisiteIDs = []int{1} // unfixable forward reference

	_, report := Run(p, DefaultConfig())

	structural := report.UnresolvedStructural()
	if len(structural) == 0 {
		t.Fatalf("expected unresolved STRUCTURAL issue, got %+v", report)
	}
	if structural[0].Code != CodeBadPrerequisiteRef {
		t.Errorf("unexpected unresolved issue: %+v", structural[0])
	}
}

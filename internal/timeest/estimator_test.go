package timeest

import (
	"math"
	"testing"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

func sample(diff learnpath.SkillLevel, skills, resources int) learnpath.Milestone {
	m := learnpath.Milestone{Difficulty: diff}
	for i := 0; i < skills; i++ {
		m.TargetSkills = append(m.TargetSkills, "skill")
	}
	for i := 0; i < resources; i++ {
		m.Resources = append(m.Resources, learnpath.Resource{Title: "r"})
	}
	return m
}

func TestEstimateMilestone_EffortFormula(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		m          learnpath.Milestone
		wantEffort float64
	}{
		{"beginner", sample(learnpath.LevelBeginner, 2, 3), (2*3 + 3*2) * 1.0},
		{"intermediate", sample(learnpath.LevelIntermediate, 2, 3), (2*3 + 3*2) * 1.5},
		{"advanced", sample(learnpath.LevelAdvanced, 2, 3), (2*3 + 3*2) * 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateMilestone(tt.m, 40, cfg)
			if got.EffortHours != tt.wantEffort {
				t.Errorf("effort %.2f, expected %.2f", got.EffortHours, tt.wantEffort)
			}
		})
	}
}

func TestEstimateMilestone_PresetEffortKept(t *testing.T) {
	m := sample(learnpath.LevelBeginner, 1, 1)
	m.EstimatedDuration.EffortHours = 6 // reinforcement milestone class

	got := EstimateMilestone(m, 40, DefaultConfig())
	if got.EffortHours != 6 {
		t.Errorf("preset effort overwritten: %.2f", got.EffortHours)
	}
}

func TestEstimateMilestone_Deterministic(t *testing.T) {
	m := sample(learnpath.LevelIntermediate, 3, 2)
	a := EstimateMilestone(m, 10, DefaultConfig())
	b := EstimateMilestone(m, 10, DefaultConfig())
	if a != b {
		t.Errorf("estimation is not deterministic: %+v vs %+v", a, b)
	}
}

func TestEstimateMilestone_PartTimeStretchCapped(t *testing.T) {
	cfg := DefaultConfig()
	m := sample(learnpath.LevelBeginner, 2, 2)

	fullTime := EstimateMilestone(m, cfg.FullTimeWeeklyHours, cfg)

	// 5 h/week is an 8x stretch of the 40 h/week reference; the cap keeps
	// it at 4x.
	partTime := EstimateMilestone(m, 5, cfg)
	if got, want := partTime.CalendarDays, fullTime.CalendarDays*cfg.MaxStretchFactor; math.Abs(got-want) > 1e-9 {
		t.Errorf("calendar days %.2f, expected capped %.2f", got, want)
	}

	// 20 h/week is a 2x stretch: under the cap, so unclamped.
	half := EstimateMilestone(m, 20, cfg)
	if got, want := half.CalendarDays, fullTime.CalendarDays*2; math.Abs(got-want) > 1e-9 {
		t.Errorf("calendar days %.2f, expected %.2f", got, want)
	}
}

func TestEstimatePath_TotalsWithBuffer(t *testing.T) {
	cfg := DefaultConfig()
	in := []learnpath.Milestone{
		sample(learnpath.LevelBeginner, 1, 2),
		sample(learnpath.LevelIntermediate, 2, 1),
	}

	out, total := EstimatePath(in, 10, cfg)

	var sum learnpath.Duration
	for _, m := range out {
		if m.EstimatedDuration.EffortHours <= 0 || m.EstimatedDuration.CalendarDays <= 0 {
			t.Fatalf("milestone missing estimate: %+v", m.EstimatedDuration)
		}
		sum = sum.Add(m.EstimatedDuration)
	}

	wantHours := sum.EffortHours * (1 + cfg.BufferFraction)
	wantDays := sum.CalendarDays * (1 + cfg.BufferFraction)
	if math.Abs(total.EffortHours-wantHours) > 1e-6 {
		t.Errorf("total effort %.4f, expected %.4f", total.EffortHours, wantHours)
	}
	if math.Abs(total.CalendarDays-wantDays) > 1e-6 {
		t.Errorf("total days %.4f, expected %.4f", total.CalendarDays, wantDays)
	}
}

func TestEstimatePath_SlowerBudgetTakesLonger(t *testing.T) {
	cfg := DefaultConfig()
	in := []learnpath.Milestone{
		sample(learnpath.LevelBeginner, 2, 2),
		sample(learnpath.LevelIntermediate, 1, 3),
	}

	_, slow := EstimatePath(in, 5, cfg)
	_, fast := EstimatePath(in, 20, cfg)

	if slow.CalendarDays <= fast.CalendarDays {
		t.Errorf("5 h/week plan (%.1f days) should be longer than 20 h/week plan (%.1f days)",
			slow.CalendarDays, fast.CalendarDays)
	}
	ratio := slow.CalendarDays / fast.CalendarDays
	if ratio > cfg.MaxStretchFactor {
		t.Errorf("stretch ratio %.2f exceeds cap %.2f", ratio, cfg.MaxStretchFactor)
	}
}

func TestEstimatePath_DoesNotMutateInput(t *testing.T) {
	in := []learnpath.Milestone{sample(learnpath.LevelBeginner, 1, 1)}
	_, _ = EstimatePath(in, 10, DefaultConfig())
	if in[0].EstimatedDuration.CalendarDays != 0 {
		t.Error("input milestone was mutated")
	}
}

package difficulty

import (
	"testing"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

func ms(diff learnpath.SkillLevel, synth bool) learnpath.Milestone {
	return learnpath.Milestone{Difficulty: diff, Synthesized: synth}
}

func levels(milestones []learnpath.Milestone) []learnpath.SkillLevel {
	out := make([]learnpath.SkillLevel, len(milestones))
	for i, m := range milestones {
		out[i] = m.Difficulty
	}
	return out
}

func TestAssess_ClassifiesUntaggedByKeywords(t *testing.T) {
	tests := []struct {
		name  string
		m     learnpath.Milestone
		want  learnpath.SkillLevel
	}{
		{
			name: "advanced keywords",
			m:    learnpath.Milestone{Title: "Production Deployment", Description: "Security and performance at scale"},
			want: learnpath.LevelAdvanced,
		},
		{
			name: "intermediate keywords",
			m:    learnpath.Milestone{Title: "Build a Project", Description: "Use a framework and a database"},
			want: learnpath.LevelIntermediate,
		},
		{
			name: "beginner keywords",
			m:    learnpath.Milestone{Title: "Introduction", Description: "The basics and fundamentals"},
			want: learnpath.LevelBeginner,
		},
		{
			name: "no keywords falls back to beginner at index 0",
			m:    learnpath.Milestone{Title: "Something Unusual", Description: "No signal here"},
			want: learnpath.LevelBeginner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, adj := Assess([]learnpath.Milestone{tt.m}, DefaultConfig())
			if got[0].Difficulty != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got[0].Difficulty)
			}
			if len(adj) == 0 {
				t.Error("classification should be recorded as an adjustment")
			}
		})
	}
}

func TestAssess_NoKeywordsInheritsPreviousDifficulty(t *testing.T) {
	in := []learnpath.Milestone{
		{Title: "Framework Project", Description: "api database testing", Difficulty: ""},
		{Title: "Mystery", Description: "no signal"},
	}
	got, _ := Assess(in, DefaultConfig())
	if got[0].Difficulty != learnpath.LevelIntermediate {
		t.Fatalf("setup: first milestone classified %q", got[0].Difficulty)
	}
	if got[1].Difficulty != learnpath.LevelIntermediate {
		t.Errorf("expected inherited intermediate, got %q", got[1].Difficulty)
	}
}

func TestAssess_ClampsLargeBackwardJump(t *testing.T) {
	in := []learnpath.Milestone{
		ms(learnpath.LevelAdvanced, false),
		ms(learnpath.LevelBeginner, false), // two levels down
	}
	got, adj := Assess(in, DefaultConfig())

	if got[1].Difficulty != learnpath.LevelAdvanced {
		t.Errorf("expected clamp to advanced, got %q", got[1].Difficulty)
	}
	if len(adj) != 1 || adj[0].Index != 1 || adj[0].Old != learnpath.LevelBeginner {
		t.Errorf("unexpected adjustments: %+v", adj)
	}
}

func TestAssess_AllowsOneReviewDrop(t *testing.T) {
	in := []learnpath.Milestone{
		ms(learnpath.LevelIntermediate, false),
		ms(learnpath.LevelBeginner, false), // single-level review drop: allowed
	}
	got, adj := Assess(in, DefaultConfig())

	if got[1].Difficulty != learnpath.LevelBeginner {
		t.Errorf("expected review drop kept, got %q", got[1].Difficulty)
	}
	if len(adj) != 0 {
		t.Errorf("expected no adjustments, got %+v", adj)
	}
}

func TestAssess_SecondDropInWindowClamped(t *testing.T) {
	in := []learnpath.Milestone{
		ms(learnpath.LevelAdvanced, false),
		ms(learnpath.LevelIntermediate, false), // drop 1: allowed
		ms(learnpath.LevelBeginner, false),     // drop 2 within window: clamped
	}
	got, _ := Assess(in, DefaultConfig())

	want := []learnpath.SkillLevel{
		learnpath.LevelAdvanced,
		learnpath.LevelIntermediate,
		learnpath.LevelIntermediate,
	}
	for i, w := range want {
		if got[i].Difficulty != w {
			t.Errorf("milestone %d: expected %q, got %q (sequence %v)", i, w, got[i].Difficulty, levels(got))
		}
	}
}

func TestAssess_DropAllowedAgainAfterWindow(t *testing.T) {
	in := []learnpath.Milestone{
		ms(learnpath.LevelAdvanced, false),
		ms(learnpath.LevelIntermediate, false), // drop at index 1
		ms(learnpath.LevelIntermediate, false),
		ms(learnpath.LevelIntermediate, false),
		ms(learnpath.LevelBeginner, false), // index 4: window clear, drop allowed
	}
	got, adj := Assess(in, DefaultConfig())

	if got[4].Difficulty != learnpath.LevelBeginner {
		t.Errorf("expected second review drop outside window to be kept, got %q", got[4].Difficulty)
	}
	if len(adj) != 0 {
		t.Errorf("expected no adjustments, got %+v", adj)
	}
}

func TestAssess_SynthesizedDoesNotAdvancePrior(t *testing.T) {
	in := []learnpath.Milestone{
		ms(learnpath.LevelBeginner, true), // synthesized prerequisites
		ms(learnpath.LevelBeginner, true),
		ms(learnpath.LevelBeginner, false), // main sequence starts at beginner: fine
		ms(learnpath.LevelIntermediate, false),
	}
	got, adj := Assess(in, DefaultConfig())

	if len(adj) != 0 {
		t.Errorf("expected no adjustments, got %+v", adj)
	}
	want := []learnpath.SkillLevel{"beginner", "beginner", "beginner", "intermediate"}
	for i, w := range want {
		if got[i].Difficulty != w {
			t.Errorf("milestone %d: expected %q, got %q", i, w, got[i].Difficulty)
		}
	}
}

func TestAssess_DoesNotMutateInput(t *testing.T) {
	in := []learnpath.Milestone{
		ms(learnpath.LevelAdvanced, false),
		ms(learnpath.LevelBeginner, false),
	}
	_, _ = Assess(in, DefaultConfig())

	if in[1].Difficulty != learnpath.LevelBeginner {
		t.Errorf("input slice was mutated: %q", in[1].Difficulty)
	}
}

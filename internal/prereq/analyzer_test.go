package prereq

import (
	"testing"
	"time"

	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/taxonomy"
)

func webDomain(t *testing.T) taxonomy.Domain {
	t.Helper()
	d, err := taxonomy.Default().DomainByKey("web_development")
	if err != nil {
		t.Fatalf("DomainByKey: %v", err)
	}
	return d
}

func skill(name string, level learnpath.SkillLevel) learnpath.SkillRecord {
	return learnpath.SkillRecord{
		Name:        name,
		Level:       level,
		Confidence:  0.9,
		LastUpdated: time.Now(),
	}
}

func TestAnalyze_NoSkillsSynthesizesFullChain(t *testing.T) {
	got := Analyze(webDomain(t), nil, DefaultConfig())

	if len(got) != 3 {
		t.Fatalf("expected 3 synthesized milestones, got %d", len(got))
	}

	wantSkills := []string{"html", "css", "javascript"}
	for i, m := range got {
		if len(m.TargetSkills) != 1 || m.TargetSkills[0] != wantSkills[i] {
			t.Errorf("milestone %d targets %v, expected [%s]", i, m.TargetSkills, wantSkills[i])
		}
		if m.Difficulty != learnpath.LevelBeginner {
			t.Errorf("milestone %d difficulty %q, expected beginner", i, m.Difficulty)
		}
		if !m.Synthesized {
			t.Errorf("milestone %d not flagged as synthesized", i)
		}
		if m.EstimatedDuration.EffortHours != DefaultConfig().FullModuleHours {
			t.Errorf("milestone %d effort %.1f, expected full module hours", i, m.EstimatedDuration.EffortHours)
		}
		if len(m.Resources) == 0 || len(m.AssessmentCriteria) == 0 {
			t.Errorf("milestone %d missing resources or criteria", i)
		}
	}

	// Chain: each references only the immediately preceding milestone.
	if len(got[0].PrerequisiteIDs) != 0 {
		t.Errorf("first milestone should have no prerequisites, got %v", got[0].PrerequisiteIDs)
	}
	for i := 1; i < len(got); i++ {
		if len(got[i].PrerequisiteIDs) != 1 || got[i].PrerequisiteIDs[0] != got[i-1].ID {
			t.Errorf("milestone %d prerequisites %v, expected [%d]", i, got[i].PrerequisiteIDs, got[i-1].ID)
		}
	}
}

func TestAnalyze_MetRequirementsSuppressed(t *testing.T) {
	current := map[string]learnpath.SkillRecord{
		"html":       skill("html", learnpath.LevelAdvanced),
		"css":        skill("css", learnpath.LevelAdvanced),
		"javascript": skill("javascript", learnpath.LevelIntermediate),
	}

	got := Analyze(webDomain(t), current, DefaultConfig())
	if len(got) != 0 {
		t.Fatalf("expected no synthesized milestones, got %d", len(got))
	}
}

func TestAnalyze_BelowLevelGetsReinforcement(t *testing.T) {
	current := map[string]learnpath.SkillRecord{
		"html":       skill("html", learnpath.LevelAdvanced),
		"css":        skill("css", learnpath.LevelAdvanced),
		"javascript": skill("javascript", learnpath.LevelBeginner), // required: intermediate
	}

	cfg := DefaultConfig()
	got := Analyze(webDomain(t), current, cfg)
	if len(got) != 1 {
		t.Fatalf("expected 1 reinforcement milestone, got %d", len(got))
	}

	m := got[0]
	if m.TargetSkills[0] != "javascript" {
		t.Errorf("expected javascript milestone, got %v", m.TargetSkills)
	}
	if m.EstimatedDuration.EffortHours != cfg.FullModuleHours/2 {
		t.Errorf("reinforcement effort %.1f, expected half of %.1f", m.EstimatedDuration.EffortHours, cfg.FullModuleHours)
	}
	if m.Title != "JavaScript Essentials (Review)" {
		t.Errorf("unexpected reinforcement title %q", m.Title)
	}
}

func TestAnalyze_SkillNameLookupIsCaseInsensitive(t *testing.T) {
	current := map[string]learnpath.SkillRecord{
		"HTML":       skill("HTML", learnpath.LevelAdvanced),
		"CSS":        skill("CSS", learnpath.LevelAdvanced),
		"JavaScript": skill("JavaScript", learnpath.LevelIntermediate),
	}

	got := Analyze(webDomain(t), current, DefaultConfig())
	if len(got) != 0 {
		t.Fatalf("expected case-insensitive match to suppress all milestones, got %d", len(got))
	}
}

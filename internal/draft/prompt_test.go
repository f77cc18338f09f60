package draft

import (
	"strings"
	"testing"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

func TestBuildUserMessage(t *testing.T) {
	input := Input{
		Goal:   "become a web developer",
		Domain: "web_development",
		CurrentSkills: map[string]learnpath.SkillRecord{
			"html": {Name: "html", Level: learnpath.LevelBeginner},
		},
		Preferences: learnpath.Preferences{WeeklyHours: 10},
	}

	msg := buildUserMessage(input, DefaultConfig())

	for _, want := range []string{
		"Goal: become a web developer",
		"Domain: web_development",
		"Weekly study time: 10 hours",
		"- html: beginner",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_NoDomainOrHours(t *testing.T) {
	msg := buildUserMessage(Input{Goal: "learn to code"}, DefaultConfig())

	if strings.Contains(msg, "Domain:") {
		t.Error("unmapped goal should not mention a domain")
	}
	if strings.Contains(msg, "Weekly study time") {
		t.Error("zero weekly hours should not be mentioned")
	}
	if !strings.Contains(msg, "None (complete beginner)") {
		t.Errorf("missing beginner marker:\n%s", msg)
	}
}

func TestBuildSkillsSummary_SortedAndCapped(t *testing.T) {
	input := Input{CurrentSkills: map[string]learnpath.SkillRecord{
		"sql":        {Name: "sql", Level: learnpath.LevelIntermediate},
		"python":     {Name: "python", Level: learnpath.LevelBeginner},
		"statistics": {Name: "statistics", Level: learnpath.LevelAdvanced},
	}}

	got := buildSkillsSummary(input, 2)

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), got)
	}
	if lines[0] != "- python: beginner" || lines[1] != "- sql: intermediate" {
		t.Errorf("skills not sorted: %q", got)
	}
	if lines[2] != "- and 1 more" {
		t.Errorf("overflow line = %q", lines[2])
	}
}

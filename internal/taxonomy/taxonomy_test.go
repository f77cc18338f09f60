package taxonomy

import (
	"strings"
	"testing"
)

func TestDefault_SeedIsValid(t *testing.T) {
	tax := Default()
	if tax.Version != 1 {
		t.Errorf("expected version 1, got %d", tax.Version)
	}
	if len(tax.Domains) < 5 {
		t.Errorf("expected at least 5 seed domains, got %d", len(tax.Domains))
	}
}

func TestDefault_WebDevelopmentSkillOrder(t *testing.T) {
	d, err := Default().DomainByKey("web_development")
	if err != nil {
		t.Fatalf("DomainByKey: %v", err)
	}

	want := []string{"html", "css", "javascript"}
	if len(d.Skills) != len(want) {
		t.Fatalf("expected %d skills, got %d", len(want), len(d.Skills))
	}
	for i, name := range want {
		if d.Skills[i].Name != name {
			t.Errorf("skill %d: expected %q, got %q", i, name, d.Skills[i].Name)
		}
	}
	if d.Skills[2].MinLevel != "intermediate" {
		t.Errorf("javascript min_level: expected intermediate, got %q", d.Skills[2].MinLevel)
	}
}

func TestLoad_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no domains",
			yaml:    "version: 1\ndomains: []\n",
			wantErr: "no domains",
		},
		{
			name: "duplicate keys",
			yaml: `version: 1
domains:
  - key: a
    triggers: [x]
    skills: [{name: s, min_level: beginner, title: T}]
  - key: a
    triggers: [y]
    skills: [{name: s, min_level: beginner, title: T}]
`,
			wantErr: "duplicate domain key",
		},
		{
			name: "missing triggers",
			yaml: `version: 1
domains:
  - key: a
    skills: [{name: s, min_level: beginner, title: T}]
`,
			wantErr: "no trigger phrases",
		},
		{
			name: "unknown level",
			yaml: `version: 1
domains:
  - key: a
    triggers: [x]
    skills: [{name: s, min_level: expert, title: T}]
`,
			wantErr: "unknown min_level",
		},
		{
			name: "duplicate skill",
			yaml: `version: 1
domains:
  - key: a
    triggers: [x]
    skills:
      - {name: s, min_level: beginner, title: T}
      - {name: s, min_level: beginner, title: T}
`,
			wantErr: "twice",
		},
		{
			name:    "zero version",
			yaml:    "version: 0\ndomains: [{key: a, triggers: [x], skills: [{name: s, min_level: beginner, title: T}]}]\n",
			wantErr: "version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestMatchGoal(t *testing.T) {
	tax := Default()

	tests := []struct {
		goal       string
		wantDomain string
	}{
		{"become a web developer", "web_development"},
		{"full stack developer", "web_development"},
		{"break into data science", "data_science"},
		{"learn to code", "software_engineering"},
		{"underwater basket weaving", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			m := tax.MatchGoal(tt.goal, DefaultMatchThreshold)
			if m.Domain != tt.wantDomain {
				t.Errorf("goal %q: expected domain %q, got %q (confidence %.2f)",
					tt.goal, tt.wantDomain, m.Domain, m.Confidence)
			}
			if tt.wantDomain != "" && !m.Matched() {
				t.Errorf("goal %q: expected a match", tt.goal)
			}
		})
	}
}

func TestMatchGoal_ConfidenceIsTokenCoverage(t *testing.T) {
	tax := Default()

	// "become a web developer": 4 tokens, "web developer" covers 2.
	m := tax.MatchGoal("become a web developer", DefaultMatchThreshold)
	if m.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %.4f", m.Confidence)
	}

	// Unmatched goals report zero confidence and no domain.
	m = tax.MatchGoal("underwater basket weaving", DefaultMatchThreshold)
	if m.Matched() || m.Confidence != 0 {
		t.Errorf("expected no match with 0 confidence, got %+v", m)
	}
}

func TestMatchGoal_BelowThresholdReportsScore(t *testing.T) {
	tax := Default()

	// "frontend" is 1 of 8 tokens: scores 0.125, below the 0.34 threshold.
	m := tax.MatchGoal("maybe sort of possibly eventually touch some frontend", DefaultMatchThreshold)
	if m.Matched() {
		t.Errorf("expected no domain below threshold, got %q", m.Domain)
	}
	if m.Confidence <= 0 {
		t.Error("expected the best sub-threshold score to be reported")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Become a Web-Developer!")
	want := []string{"become", "a", "web", "developer"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

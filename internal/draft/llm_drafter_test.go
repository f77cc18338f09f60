package draft

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/llm"
)

const draftJSON = `{
	"milestones": [
		{
			"title": "HTML Foundations",
			"description": "Structure pages with semantic HTML.",
			"target_skills": ["html"],
			"resources": [
				{"title": "MDN HTML Guide", "url": "https://developer.mozilla.org/en-US/docs/Learn/HTML", "type": "article", "free": true}
			],
			"assessment_criteria": ["Build a multi-page static site"]
		},
		{
			"title": "CSS Layout",
			"description": "Style and lay out pages with modern CSS.",
			"target_skills": ["css"],
			"resources": [],
			"assessment_criteria": []
		}
	]
}`

func TestDraft_MapsResponse(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(draftJSON)})
	d := New(provider, DefaultConfig())

	got, err := d.Draft(context.Background(), Input{Goal: "become a web developer"})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}

	first := got[0]
	if first.ID != 0 || got[1].ID != 1 {
		t.Errorf("ids = %d, %d, want 0, 1", first.ID, got[1].ID)
	}
	if first.Title != "HTML Foundations" {
		t.Errorf("title = %q", first.Title)
	}
	if len(first.TargetSkills) != 1 || first.TargetSkills[0] != "html" {
		t.Errorf("target skills = %v", first.TargetSkills)
	}
	if len(first.Resources) != 1 {
		t.Fatalf("resources = %v", first.Resources)
	}
	if first.Resources[0].Type != learnpath.ResourceArticle || !first.Resources[0].Free {
		t.Errorf("resource = %+v", first.Resources[0])
	}
	if first.Status != learnpath.StatusNotStarted {
		t.Errorf("status = %q", first.Status)
	}
	// Drafts carry no difficulty or duration; those come later.
	if first.Difficulty != "" {
		t.Errorf("difficulty = %q, want empty", first.Difficulty)
	}
	if first.EstimatedDuration.EffortHours != 0 {
		t.Errorf("effort = %v, want 0", first.EstimatedDuration.EffortHours)
	}
}

func TestDraft_RequestShape(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(draftJSON)})
	d := New(provider, DefaultConfig())

	if _, err := d.Draft(context.Background(), Input{Goal: "become a web developer"}); err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if provider.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", provider.CallCount())
	}

	req := provider.Calls[0]
	if req.Schema != PathDraftSchema {
		t.Error("request did not carry the path draft schema")
	}
	if req.System == "" {
		t.Error("request has no system prompt")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "become a web developer") {
		t.Errorf("user message = %+v", req.Messages)
	}
}

func TestDraft_EmptyResponse(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"milestones": []}`)})
	d := New(provider, DefaultConfig())

	if _, err := d.Draft(context.Background(), Input{Goal: "learn sql"}); err == nil {
		t.Fatal("expected error for empty draft")
	}
}

func TestDraft_MissingTitle(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"milestones": [{"title": "", "description": "x", "target_skills": [], "resources": [], "assessment_criteria": []}]}`),
	})
	d := New(provider, DefaultConfig())

	if _, err := d.Draft(context.Background(), Input{Goal: "learn sql"}); err == nil {
		t.Fatal("expected error for untitled milestone")
	}
}

func TestDraft_TrimsOverlongDraft(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(draftJSON)})
	cfg := DefaultConfig()
	cfg.MaxMilestones = 1
	d := New(provider, cfg)

	got, err := d.Draft(context.Background(), Input{Goal: "become a web developer"})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d milestones, want 1", len(got))
	}
	if got[0].Title != "HTML Foundations" {
		t.Errorf("kept %q, want the earliest milestone", got[0].Title)
	}
}

func TestDraft_ProviderError(t *testing.T) {
	wantErr := errors.New("boom")
	provider := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	d := New(provider, DefaultConfig())

	_, err := d.Draft(context.Background(), Input{Goal: "learn sql"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestDraft_MalformedJSON(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	d := New(provider, DefaultConfig())

	if _, err := d.Draft(context.Background(), Input{Goal: "learn sql"}); err == nil {
		t.Fatal("expected parse error")
	}
}

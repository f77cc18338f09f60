package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/llm"
)

// LLMDrafter implements Drafter using the LLM provider.
type LLMDrafter struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMDrafter with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMDrafter {
	return &LLMDrafter{provider: provider, config: cfg}
}

// pathOutput is the raw LLM response before mapping.
type pathOutput struct {
	Milestones []milestoneOutput `json:"milestones"`
}

type milestoneOutput struct {
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	TargetSkills       []string         `json:"target_skills"`
	Resources          []resourceOutput `json:"resources"`
	AssessmentCriteria []string         `json:"assessment_criteria"`
}

type resourceOutput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
	Free  bool   `json:"free"`
}

// Draft produces the raw milestone sequence for the given input.
func (d *LLMDrafter) Draft(ctx context.Context, input Input) ([]learnpath.Milestone, error) {
	ctx = llm.WithPurpose(ctx, "path-draft")

	userMsg := buildUserMessage(input, d.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      PathDraftSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM draft failed: %w", err)
	}

	var raw pathOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Milestones) == 0 {
		return nil, fmt.Errorf("LLM draft contained no milestones")
	}

	// Over-long drafts are trimmed rather than rejected.
	if d.config.MaxMilestones > 0 && len(raw.Milestones) > d.config.MaxMilestones {
		raw.Milestones = raw.Milestones[:d.config.MaxMilestones]
	}

	milestones := make([]learnpath.Milestone, 0, len(raw.Milestones))
	for i, m := range raw.Milestones {
		if m.Title == "" {
			return nil, fmt.Errorf("milestone %d has no title", i)
		}
		milestones = append(milestones, learnpath.Milestone{
			ID:                 i,
			Title:              m.Title,
			Description:        m.Description,
			TargetSkills:       m.TargetSkills,
			Resources:          mapResources(m.Resources),
			AssessmentCriteria: m.AssessmentCriteria,
			Status:             learnpath.StatusNotStarted,
		})
	}

	return milestones, nil
}

func mapResources(raw []resourceOutput) []learnpath.Resource {
	if len(raw) == 0 {
		return nil
	}
	resources := make([]learnpath.Resource, 0, len(raw))
	for _, r := range raw {
		resources = append(resources, learnpath.Resource{
			Title: r.Title,
			URL:   r.URL,
			Type:  learnpath.ResourceType(r.Type),
			Free:  r.Free,
		})
	}
	return resources
}

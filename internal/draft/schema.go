package draft

import "github.com/abhisek/pathcraft/internal/llm"

// PathDraftSchema defines the JSON schema for LLM path draft responses.
var PathDraftSchema = &llm.Schema{
	Name:        "path-draft",
	Description: "An ordered sequence of learning milestones toward a goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"milestones": map[string]any{
				"type":        "array",
				"description": "Milestones in learning order, earliest first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short milestone title",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What the learner accomplishes in this milestone",
						},
						"target_skills": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Specific skills learned in this milestone",
						},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{
										"type":        "string",
										"description": "Resource name",
									},
									"url": map[string]any{
										"type":        "string",
										"description": "Resource URL, empty if unknown",
									},
									"type": map[string]any{
										"type":        "string",
										"enum":        []any{"course", "video", "article", "book", "practice", "project"},
										"description": "Resource format",
									},
									"free": map[string]any{
										"type":        "boolean",
										"description": "Whether the resource is free",
									},
								},
								"required":             []any{"title", "url", "type", "free"},
								"additionalProperties": false,
							},
							"description": "Suggested learning resources, free ones preferred. May be empty.",
						},
						"assessment_criteria": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Concrete, checkable completion criteria. May be empty.",
						},
					},
					"required":             []any{"title", "description", "target_skills", "resources", "assessment_criteria"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"milestones"},
		"additionalProperties": false,
	},
}

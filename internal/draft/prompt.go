package draft

import (
	"fmt"
	"sort"
	"strings"
)

const systemPrompt = `You are an expert learning path designer. Create structured, beginner-friendly learning paths that:

1. Start from the learner's current skill level
2. Progress logically from foundational to advanced concepts
3. Include practical, hands-on work in each milestone
4. Prioritize free, high-quality resources (official docs, free courses, videos)
5. Break learning into manageable milestones of roughly 1-3 weeks each
6. Provide concrete, checkable assessment criteria per milestone

Rules:
- Order milestones so that each one only depends on material covered earlier.
- Do not repeat skills the learner already has at the required level.
- Each milestone needs a clear title, a description of what the learner accomplishes, and the specific skills it teaches.
- Suggest real, well-known resources. If unsure of a URL, leave it empty rather than inventing one.
- Do not estimate durations or difficulty labels; they are computed separately.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Goal: %s\n", input.Goal)
	if input.Domain != "" {
		fmt.Fprintf(&b, "Domain: %s\n", input.Domain)
	}
	fmt.Fprintf(&b, "Milestones: between %d and %d\n", cfg.MinMilestones, cfg.MaxMilestones)
	if input.Preferences.WeeklyHours > 0 {
		fmt.Fprintf(&b, "Weekly study time: %.0f hours\n", input.Preferences.WeeklyHours)
	}

	b.WriteString("\nCurrent skills:\n")
	b.WriteString(buildSkillsSummary(input, cfg.MaxSkillsListed))

	return b.String()
}

// buildSkillsSummary formats the learner's skill state for the prompt,
// respecting the listing limit. Skills are sorted for stable prompts.
func buildSkillsSummary(input Input, max int) string {
	if len(input.CurrentSkills) == 0 {
		return "None (complete beginner)"
	}

	names := make([]string, 0, len(input.CurrentSkills))
	for name := range input.CurrentSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	listed := names
	if max > 0 && len(listed) > max {
		listed = listed[:max]
	}

	var b strings.Builder
	for _, name := range listed {
		fmt.Fprintf(&b, "- %s: %s\n", name, input.CurrentSkills[name].Level)
	}
	if rest := len(names) - len(listed); rest > 0 {
		fmt.Fprintf(&b, "- and %d more\n", rest)
	}
	return strings.TrimRight(b.String(), "\n")
}

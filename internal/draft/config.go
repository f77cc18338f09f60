package draft

// Config controls the behavior of the LLMDrafter.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MinMilestones and MaxMilestones bound the requested path length.
	MinMilestones int
	MaxMilestones int

	// MaxSkillsListed caps how many current skills are spelled out in
	// the prompt before the rest are summarized by count.
	MaxSkillsListed int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       4096,
		Temperature:     0.7,
		MinMilestones:   4,
		MaxMilestones:   8,
		MaxSkillsListed: 12,
	}
}

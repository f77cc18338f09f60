package difficulty

// Keywords holds the three indicator sets used to classify a milestone
// that arrives without a difficulty tag. Configuration data: callers may
// substitute their own sets.
type Keywords struct {
	Beginner     []string
	Intermediate []string
	Advanced     []string
}

// DefaultKeywords returns the standard indicator sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Beginner: []string{
			"introduction", "intro", "basics", "basic", "fundamentals",
			"foundation", "getting started", "first steps", "beginner",
			"overview", "essentials",
		},
		Intermediate: []string{
			"framework", "library", "api", "database", "testing",
			"debugging", "integration", "workflow", "automation",
			"responsive", "project", "intermediate",
		},
		Advanced: []string{
			"advanced", "expert", "professional", "enterprise",
			"architecture", "optimization", "performance", "scalability",
			"security", "deployment", "distributed", "production",
		},
	}
}

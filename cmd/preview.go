package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathcraft/internal/difficulty"
	"github.com/abhisek/pathcraft/internal/prereq"
	"github.com/abhisek/pathcraft/internal/taxonomy"
	"github.com/abhisek/pathcraft/internal/timeest"
)

var previewCmd = &cobra.Command{
	Use:   "preview <goal>",
	Short: "Preview domain mapping and prerequisites for a goal (no LLM, no database)",
	Long: `Show how a goal maps to a domain and which prerequisite milestones
would be injected for the given skills.

This is a stateless developer tool — no LLM call, no database, no events.
Useful for tuning the taxonomy and checking estimates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringArray("skill", nil, "Current skill as name=level (repeatable)")
	previewCmd.Flags().Float64("hours", 10, "Weekly study hours")
}

func runPreview(cmd *cobra.Command, args []string) error {
	goal := strings.Join(args, " ")
	skillFlags, _ := cmd.Flags().GetStringArray("skill")
	hours, _ := cmd.Flags().GetFloat64("hours")

	skills, err := parseSkillFlags(skillFlags)
	if err != nil {
		return err
	}

	tax := taxonomy.Default()
	match := tax.MatchGoal(goal, taxonomy.DefaultMatchThreshold)

	fmt.Printf("Goal:       %s\n", goal)
	if !match.Matched() {
		fmt.Printf("Domain:     (none, best score %.2f)\n", match.Confidence)
		fmt.Println("\nNo prerequisite injection for unmapped goals.")
		return nil
	}

	domain, err := tax.DomainByKey(match.Domain)
	if err != nil {
		return fmt.Errorf("resolve matched domain: %w", err)
	}
	fmt.Printf("Domain:     %s (%s, confidence %.2f)\n", domain.Name, domain.Key, match.Confidence)
	fmt.Printf("Required:   ")
	for i, s := range domain.Skills {
		if i > 0 {
			fmt.Print(" → ")
		}
		fmt.Printf("%s (%s)", s.Name, s.MinLevel)
	}
	fmt.Println()

	synth := prereq.Analyze(domain, skills, prereq.DefaultConfig())
	if len(synth) == 0 {
		fmt.Println("\nAll prerequisites met; nothing would be injected.")
		return nil
	}

	assessed, _ := difficulty.Assess(synth, difficulty.DefaultConfig())
	estimated, total := timeest.EstimatePath(assessed, hours, timeest.DefaultConfig())

	fmt.Printf("\nInjected prerequisites at %.0f h/week:\n", hours)
	for _, m := range estimated {
		fmt.Printf("  %d. %-40s %-12s %5.0fh  ~%.0f days\n",
			m.ID+1, m.Title, m.Difficulty,
			m.EstimatedDuration.EffortHours, m.EstimatedDuration.CalendarDays)
	}
	fmt.Printf("\nPrerequisite total (with buffer): %.0fh, ~%.0f days\n",
		total.EffortHours, total.CalendarDays)

	return nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathcraft/internal/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect the domain taxonomy",
}

var taxonomyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known domains",
	Run: func(cmd *cobra.Command, args []string) {
		tax := taxonomy.Default()
		fmt.Printf("%-24s  %-28s  %s\n", "Key", "Name", "Skills")
		fmt.Println(strings.Repeat("─", 80))
		for _, key := range tax.Keys() {
			d, _ := tax.DomainByKey(key)
			var skills []string
			for _, s := range d.Skills {
				skills = append(skills, s.Name)
			}
			fmt.Printf("%-24s  %-28s  %s\n", d.Key, d.Name, strings.Join(skills, ", "))
		}
	},
}

var taxonomyShowCmd = &cobra.Command{
	Use:   "show <domain-key>",
	Short: "Show one domain's triggers and required skills",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tax := taxonomy.Default()
		d, err := tax.DomainByKey(args[0])
		if err != nil {
			return fmt.Errorf("unknown domain %q (see 'pathcraft taxonomy list')", args[0])
		}

		fmt.Printf("Key:      %s\n", d.Key)
		fmt.Printf("Name:     %s\n", d.Name)
		fmt.Printf("Triggers: %s\n", strings.Join(d.Triggers, ", "))
		fmt.Println("Skills (in order):")
		for i, s := range d.Skills {
			fmt.Printf("  %d. %-16s min %-12s  %s\n", i+1, s.Name, s.MinLevel, s.Title)
		}
		return nil
	},
}

var taxonomyCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a taxonomy YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		tax, err := taxonomy.Load(data)
		if err != nil {
			return fmt.Errorf("invalid taxonomy: %w", err)
		}
		fmt.Printf("OK: version %d, %d domains\n", tax.Version, len(tax.Keys()))
		return nil
	},
}

var taxonomyMatchCmd = &cobra.Command{
	Use:   "match <goal>",
	Short: "Show how a goal scores against each domain",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		goal := strings.Join(args, " ")
		tax := taxonomy.Default()

		match := tax.MatchGoal(goal, taxonomy.DefaultMatchThreshold)
		if match.Matched() {
			fmt.Printf("Matched: %s (confidence %.2f)\n", match.Domain, match.Confidence)
		} else {
			fmt.Printf("No match (best score %.2f, threshold %.2f)\n",
				match.Confidence, taxonomy.DefaultMatchThreshold)
		}
	},
}

func init() {
	taxonomyCmd.AddCommand(taxonomyListCmd)
	taxonomyCmd.AddCommand(taxonomyShowCmd)
	taxonomyCmd.AddCommand(taxonomyCheckCmd)
	taxonomyCmd.AddCommand(taxonomyMatchCmd)
}

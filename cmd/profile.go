package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathcraft/internal/store"
)

// keepProfiles is how many old profile versions survive a save.
const keepProfiles = 10

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the saved learner profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		p, err := st.ProfileRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile saved. Use 'pathcraft profile set' to create one.")
			return nil
		}

		fmt.Printf("Saved:        %s\n", p.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Weekly hours: %.0f\n", p.Data.WeeklyHours)
		if len(p.Data.Skills) == 0 {
			fmt.Println("Skills:       (none)")
			return nil
		}
		fmt.Println("Skills:")
		names := make([]string, 0, len(p.Data.Skills))
		for name := range p.Data.Skills {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-20s %s\n", name, p.Data.Skills[name])
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update skills and preferences in the profile",
	Long: `Save a new profile version. Skills are merged over the previous
profile; --hours replaces the weekly time budget when given.

  pathcraft profile set --skill html=beginner --skill sql=intermediate --hours 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skillFlags, _ := cmd.Flags().GetStringArray("skill")
		hours, _ := cmd.Flags().GetFloat64("hours")
		clear, _ := cmd.Flags().GetBool("clear")

		if len(skillFlags) == 0 && hours == 0 && !clear {
			return fmt.Errorf("nothing to set: pass --skill, --hours, or --clear")
		}

		overrides, err := parseSkillFlags(skillFlags)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.ProfileRepo()

		data := store.ProfileData{Version: 1, Skills: map[string]string{}}
		if !clear {
			prev, err := repo.Latest(ctx)
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			if prev != nil {
				data = prev.Data
				if data.Skills == nil {
					data.Skills = map[string]string{}
				}
			}
		}

		for name, rec := range overrides {
			data.Skills[name] = string(rec.Level)
		}
		if hours > 0 {
			data.WeeklyHours = hours
		}

		if err := repo.Save(ctx, &store.Profile{Data: data}); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		if err := repo.Prune(ctx, keepProfiles); err != nil {
			return fmt.Errorf("prune profiles: %w", err)
		}

		fmt.Printf("Profile saved: %d skill(s), %.0f h/week\n", len(data.Skills), data.WeeklyHours)
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringArray("skill", nil, "Skill as name=level (repeatable)")
	profileSetCmd.Flags().Float64("hours", 0, "Weekly study hours")
	profileSetCmd.Flags().Bool("clear", false, "Start from an empty profile instead of merging")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}

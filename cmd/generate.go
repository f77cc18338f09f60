package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathcraft/internal/draft"
	"github.com/abhisek/pathcraft/internal/engine"
	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/llm"
	"github.com/abhisek/pathcraft/internal/render"
	"github.com/abhisek/pathcraft/internal/store"
	"github.com/abhisek/pathcraft/internal/taxonomy"
)

// defaultWeeklyHours is assumed when neither the profile nor --hours
// supplies a weekly commitment.
const defaultWeeklyHours = 10

var generateCmd = &cobra.Command{
	Use:   "generate <goal>",
	Short: "Generate a learning path for a goal",
	Long: `Generate a validated learning path from a free-text goal.

Current skills come from the saved profile (see "pathcraft profile"),
overridden per-skill with repeated --skill flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringArray("skill", nil, "Current skill as name=level (repeatable, e.g. --skill html=beginner)")
	generateCmd.Flags().Float64("hours", 0, "Weekly study hours (overrides saved profile)")
	generateCmd.Flags().Bool("no-profile", false, "Ignore the saved profile")
	generateCmd.Flags().Bool("allow-degraded", false, "Produce a degraded path instead of failing when the goal or LLM cannot be resolved")
	generateCmd.Flags().Bool("json", false, "Print the path as JSON instead of rendering it")
	generateCmd.Flags().Duration("timeout", 60*time.Second, "Timeout for the LLM draft call")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	goal := strings.Join(args, " ")
	skillFlags, _ := cmd.Flags().GetStringArray("skill")
	hours, _ := cmd.Flags().GetFloat64("hours")
	noProfile, _ := cmd.Flags().GetBool("no-profile")
	allowDegraded, _ := cmd.Flags().GetBool("allow-degraded")
	asJSON, _ := cmd.Flags().GetBool("json")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	skills := map[string]learnpath.SkillRecord{}
	weeklyHours := hours
	if !noProfile {
		profile, err := st.ProfileRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if profile != nil {
			for name, level := range profile.Data.Skills {
				skills[name] = learnpath.SkillRecord{Name: name, Level: learnpath.SkillLevel(level)}
			}
			if weeklyHours == 0 {
				weeklyHours = profile.Data.WeeklyHours
			}
		}
	}
	if weeklyHours <= 0 {
		weeklyHours = defaultWeeklyHours
	}
	overrides, err := parseSkillFlags(skillFlags)
	if err != nil {
		return err
	}
	for name, rec := range overrides {
		skills[name] = rec
	}

	var drafter draft.Drafter
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		if !allowDegraded {
			return fmt.Errorf("LLM provider not configured (set PATHCRAFT_LLM_PROVIDER or run with --allow-degraded): %w", err)
		}
		fmt.Fprintln(os.Stderr, "LLM provider not configured; generating a degraded template path.")
		drafter = &draft.MockDrafter{Err: err}
	} else {
		drafter = draft.New(provider, draft.DefaultConfig())
	}

	cfg := engine.DefaultConfig()
	cfg.AllowDegradedFallback = allowDegraded
	cfg.DraftTimeout = timeout

	eng := engine.New(taxonomy.Default(), drafter, cfg)
	res, err := eng.GeneratePath(ctx, engine.Request{
		Goal:          goal,
		CurrentSkills: skills,
		Preferences:   learnpath.Preferences{WeeklyHours: weeklyHours},
	})
	if err != nil {
		return err
	}

	if err := recordPath(cmd, st, res); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record path: %v\n", err)
	}

	if asJSON {
		out, err := json.MarshalIndent(res.Path, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal path: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(render.Path(res.Path))

	if res.Report.Repaired() {
		fmt.Printf("\n%d issue(s) repaired during validation:\n", len(res.Report.Applied))
		for _, f := range res.Report.Applied {
			fmt.Printf("  - %s\n", f.Message)
		}
	}
	for _, issue := range res.Report.Unresolved {
		fmt.Printf("unresolved: %s\n", issue)
	}

	return nil
}

// parseSkillFlags parses repeated name=level flags into skill records.
func parseSkillFlags(flags []string) (map[string]learnpath.SkillRecord, error) {
	out := make(map[string]learnpath.SkillRecord, len(flags))
	for _, f := range flags {
		name, level, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(strings.ToLower(name))
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --skill %q: expected name=level", f)
		}
		lv := learnpath.SkillLevel(strings.TrimSpace(strings.ToLower(level)))
		if !lv.Valid() {
			return nil, fmt.Errorf("invalid --skill %q: level must be beginner, intermediate, or advanced", f)
		}
		out[name] = learnpath.SkillRecord{Name: name, Level: lv}
	}
	return out, nil
}

// recordPath appends a path generation event with the full document.
func recordPath(cmd *cobra.Command, st *store.Store, res *engine.Result) error {
	doc, err := json.Marshal(res.Path)
	if err != nil {
		return fmt.Errorf("marshal path: %w", err)
	}
	return st.EventRepo().AppendPathGeneration(cmd.Context(), store.PathEventData{
		PathID:            res.Path.ID,
		Goal:              res.Path.Goal,
		Domain:            res.Path.Domain,
		Status:            string(res.Path.ValidationStatus),
		Milestones:        len(res.Path.Milestones),
		EffortHours:       res.Path.TotalDuration.EffortHours,
		CalendarDays:      res.Path.TotalDuration.CalendarDays,
		OverallDifficulty: string(res.Path.OverallDifficulty),
		PathJSON:          string(doc),
	})
}

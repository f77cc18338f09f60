package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathcraft/internal/learnpath"
	"github.com/abhisek/pathcraft/internal/render"
	"github.com/abhisek/pathcraft/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and re-render previously generated paths",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated paths, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().ListPathGenerations(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query paths: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No paths generated yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-30s  %-8s  %3s  %6s\n",
			"ID", "Created", "Goal", "Status", "Ms", "Hours")
		fmt.Println(strings.Repeat("─", 110))
		for _, e := range events {
			goal := e.Goal
			if len(goal) > 30 {
				goal = goal[:30]
			}
			fmt.Printf("%-36s  %-19s  %-30s  %-8s  %3d  %6.0f\n",
				e.PathID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				goal,
				e.Status,
				e.Milestones,
				e.EffortHours,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <path-id>",
	Short: "Re-render a generated path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		e, err := st.EventRepo().GetPathGeneration(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get path: %w", err)
		}
		if e == nil {
			return fmt.Errorf("path %s not found", args[0])
		}

		if asJSON {
			fmt.Println(e.PathJSON)
			return nil
		}

		var p learnpath.LearningPath
		if err := json.Unmarshal([]byte(e.PathJSON), &p); err != nil {
			return fmt.Errorf("parse stored path: %w", err)
		}
		fmt.Print(render.Path(p))
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of paths to show")
	historyShowCmd.Flags().Bool("json", false, "Print the stored JSON document")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}

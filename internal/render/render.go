// Package render formats learning paths for terminal display.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

// Color palette — calm, readable on dark terminals
var (
	primary   = lipgloss.Color("#8B5CF6") // Purple
	secondary = lipgloss.Color("#14B8A6") // Teal
	accent    = lipgloss.Color("#F97316") // Orange
	success   = lipgloss.Color("#22C55E") // Green
	danger    = lipgloss.Color("#F43F5E") // Rose
	dim       = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(dim)

	milestoneStyle = lipgloss.NewStyle().
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(dim)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary)
)

var statusStyles = map[learnpath.ValidationStatus]lipgloss.Style{
	learnpath.StatusValid:    lipgloss.NewStyle().Bold(true).Foreground(success),
	learnpath.StatusRepaired: lipgloss.NewStyle().Bold(true).Foreground(accent),
	learnpath.StatusDegraded: lipgloss.NewStyle().Bold(true).Foreground(danger),
}

var difficultyStyles = map[learnpath.SkillLevel]lipgloss.Style{
	learnpath.LevelBeginner:     lipgloss.NewStyle().Foreground(success),
	learnpath.LevelIntermediate: lipgloss.NewStyle().Foreground(accent),
	learnpath.LevelAdvanced:     lipgloss.NewStyle().Foreground(danger),
}

// Path renders a full learning path for the terminal.
func Path(p learnpath.LearningPath) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Goal))
	b.WriteString("\n")

	if p.Domain != "" {
		b.WriteString(labelStyle.Render("Domain: "))
		b.WriteString(p.Domain)
		b.WriteString("   ")
	}
	b.WriteString(labelStyle.Render("Status: "))
	b.WriteString(statusBadge(p.ValidationStatus))
	b.WriteString("   ")
	b.WriteString(labelStyle.Render("Difficulty: "))
	b.WriteString(difficultyBadge(p.OverallDifficulty))
	b.WriteString("\n\n")

	for _, m := range p.Milestones {
		b.WriteString(renderMilestone(m))
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(fmt.Sprintf(
		"Total: %s effort, ~%s",
		hours(p.TotalDuration.EffortHours),
		days(p.TotalDuration.CalendarDays),
	)))
	b.WriteString("\n")

	return b.String()
}

func renderMilestone(m learnpath.Milestone) string {
	var b strings.Builder

	title := m.Title
	if m.Synthesized {
		title += " *"
	}
	b.WriteString(milestoneStyle.Render(fmt.Sprintf("%d. %s", m.ID+1, title)))
	b.WriteString("  ")
	b.WriteString(difficultyBadge(m.Difficulty))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %s / ~%s",
		hours(m.EstimatedDuration.EffortHours),
		days(m.EstimatedDuration.CalendarDays))))
	b.WriteString("\n")

	if m.Description != "" {
		b.WriteString("   ")
		b.WriteString(descStyle.Render(m.Description))
		b.WriteString("\n")
	}
	if len(m.TargetSkills) > 0 {
		b.WriteString("   ")
		b.WriteString(labelStyle.Render("Skills: "))
		b.WriteString(strings.Join(m.TargetSkills, ", "))
		b.WriteString("\n")
	}
	for _, r := range m.Resources {
		b.WriteString("   - ")
		b.WriteString(r.Title)
		if r.URL != "" {
			b.WriteString(labelStyle.Render(" (" + r.URL + ")"))
		}
		if r.NeedsCuration {
			b.WriteString(labelStyle.Render(" [needs curation]"))
		}
		b.WriteString("\n")
	}
	for _, c := range m.AssessmentCriteria {
		b.WriteString("   ")
		b.WriteString(labelStyle.Render("Done when: "))
		b.WriteString(c)
		b.WriteString("\n")
	}

	return b.String()
}

func statusBadge(s learnpath.ValidationStatus) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

func difficultyBadge(d learnpath.SkillLevel) string {
	if style, ok := difficultyStyles[d]; ok {
		return style.Render(string(d))
	}
	return string(d)
}

func hours(h float64) string {
	return fmt.Sprintf("%.0fh", h)
}

func days(d float64) string {
	if d >= 14 {
		weeks := d / 7
		return fmt.Sprintf("%.0f weeks", weeks)
	}
	return fmt.Sprintf("%.0f days", d)
}

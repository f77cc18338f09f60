// Package difficulty tags milestones with a difficulty level and enforces
// monotonic progression across the sequence: difficulty never drops by
// more than one level, and a single-level "review" drop is allowed at most
// once in any three consecutive milestones.
package difficulty

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

// ReviewDropWindow is the lookback, in milestones, within which at most
// one single-level difficulty drop is permitted.
const ReviewDropWindow = 2

// Config holds the assessor's tunables.
type Config struct {
	Keywords Keywords
}

// DefaultConfig returns a Config with the standard keyword sets.
func DefaultConfig() Config {
	return Config{Keywords: DefaultKeywords()}
}

// Adjustment records one difficulty mutation made by the progression pass.
type Adjustment struct {
	Index  int                  `json:"index"`
	Old    learnpath.SkillLevel `json:"old"`
	New    learnpath.SkillLevel `json:"new"`
	Reason string               `json:"reason"`
}

// Assess classifies untagged milestones and runs the progression pass.
// It is a pure transform: the input slice is not mutated, and identical
// input always yields identical output. The single left-to-right scan
// works as follows, with prior starting at beginner:
//
//   - no tag          → classify by keywords, default to the previous
//     milestone's difficulty
//   - drop > 1 level  → clamp up to prior
//   - drop of 1 level → keep only if no drop occurred in the previous
//     ReviewDropWindow milestones, else clamp up to prior
//   - prior advances to the post-clamp difficulty, except for synthesized
//     prerequisites, which do not count against the main sequence
func Assess(milestones []learnpath.Milestone, cfg Config) ([]learnpath.Milestone, []Adjustment) {
	out := make([]learnpath.Milestone, len(milestones))
	var adjustments []Adjustment

	prior := learnpath.LevelBeginner
	dropped := make([]bool, len(milestones))

	for i, m := range milestones {
		m = m.Clone()

		if !m.Difficulty.Valid() {
			prev := learnpath.LevelBeginner
			if i > 0 {
				prev = out[i-1].Difficulty
			}
			m.Difficulty = classify(m, cfg.Keywords, prev)
			adjustments = append(adjustments, Adjustment{
				Index:  i,
				Old:    "",
				New:    m.Difficulty,
				Reason: "classified from milestone content",
			})
		}

		d := m.Difficulty
		switch {
		case d.Rank() < prior.Rank()-1:
			adjustments = append(adjustments, Adjustment{
				Index:  i,
				Old:    d,
				New:    prior,
				Reason: fmt.Sprintf("difficulty dropped more than one level below %s", prior),
			})
			m.Difficulty = prior

		case d.Rank() == prior.Rank()-1:
			if recentDrop(dropped, i) {
				adjustments = append(adjustments, Adjustment{
					Index:  i,
					Old:    d,
					New:    prior,
					Reason: "review step already used within the last three milestones",
				})
				m.Difficulty = prior
			} else {
				dropped[i] = true
			}
		}

		if !m.Synthesized {
			prior = m.Difficulty
		}
		out[i] = m
	}

	return out, adjustments
}

// recentDrop reports whether a kept drop occurred within the window
// preceding index i.
func recentDrop(dropped []bool, i int) bool {
	for j := i - ReviewDropWindow; j < i; j++ {
		if j >= 0 && dropped[j] {
			return true
		}
	}
	return false
}

// classify scans the milestone's title, description, and target skills
// against the keyword sets and returns the level of the set with the most
// hits. Ties break toward the harder level (one advanced signal outweighs
// one beginner signal). With no hits at all, it returns fallback.
func classify(m learnpath.Milestone, kw Keywords, fallback learnpath.SkillLevel) learnpath.SkillLevel {
	text := strings.ToLower(m.Title + " " + m.Description + " " + strings.Join(m.TargetSkills, " "))

	advanced := countHits(text, kw.Advanced)
	intermediate := countHits(text, kw.Intermediate)
	beginner := countHits(text, kw.Beginner)

	switch {
	case advanced == 0 && intermediate == 0 && beginner == 0:
		return fallback
	case advanced >= intermediate && advanced >= beginner:
		return learnpath.LevelAdvanced
	case intermediate >= beginner:
		return learnpath.LevelIntermediate
	default:
		return learnpath.LevelBeginner
	}
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}

package taxonomy

import "strings"

// DefaultMatchThreshold is the minimum confidence for a goal to map to a
// domain. The value is a tuned heuristic, not load-bearing for correctness.
const DefaultMatchThreshold = 0.34

// Match is the result of normalizing a free-text goal.
type Match struct {
	// Domain is the canonical domain key, or "" when no domain scored
	// above the threshold.
	Domain string

	// Confidence is the fraction of goal tokens covered by matched
	// trigger phrases, in [0,1].
	Confidence float64
}

// Matched reports whether the goal mapped to a domain.
func (m Match) Matched() bool { return m.Domain != "" }

// MatchGoal maps a free-text goal to the highest-scoring domain above the
// threshold. Scoring is a pure function of the goal text and the trigger
// tables: each domain scores the fraction of the goal's tokens covered by
// its trigger phrases. Ties break toward the earlier-declared domain.
func (t *Taxonomy) MatchGoal(goal string, threshold float64) Match {
	tokens := Tokenize(goal)
	if len(tokens) == 0 {
		return Match{}
	}

	best := Match{}
	for _, d := range t.Domains {
		score := scoreDomain(tokens, d.Triggers)
		if score > best.Confidence {
			best = Match{Domain: d.Key, Confidence: score}
		}
	}

	if best.Confidence < threshold {
		return Match{Confidence: best.Confidence}
	}
	return best
}

// scoreDomain returns the fraction of goal tokens covered by the domain's
// trigger phrases. A trigger matches when its tokens appear consecutively
// in the goal; every occurrence marks those goal positions as covered.
func scoreDomain(goalTokens []string, triggers []string) float64 {
	covered := make([]bool, len(goalTokens))
	for _, trig := range triggers {
		trigTokens := Tokenize(trig)
		if len(trigTokens) == 0 {
			continue
		}
		for i := 0; i+len(trigTokens) <= len(goalTokens); i++ {
			if matchAt(goalTokens, trigTokens, i) {
				for j := range trigTokens {
					covered[i+j] = true
				}
			}
		}
	}

	n := 0
	for _, c := range covered {
		if c {
			n++
		}
	}
	score := float64(n) / float64(len(goalTokens))
	if score > 1 {
		score = 1
	}
	return score
}

func matchAt(tokens, phrase []string, at int) bool {
	for j, p := range phrase {
		if tokens[at+j] != p {
			return false
		}
	}
	return true
}

// Tokenize lowercases the text and splits it into alphanumeric runs.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		}
		return true
	})
}

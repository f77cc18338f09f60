package pathcheck

import "fmt"

// Category classifies a validation issue.
type Category string

const (
	CategoryStructural Category = "STRUCTURAL"
	CategoryContent    Category = "CONTENT"
	CategoryTiming     Category = "TIMING"
)

// Issue codes. Stable identifiers for callers that branch on issue kind.
const (
	CodeMissingResources   = "missing-resources"
	CodeMissingCriteria    = "missing-criteria"
	CodeBadPrerequisiteRef = "bad-prerequisite-ref"
	CodeBadMilestoneID     = "bad-milestone-id"
	CodeTotalMismatch      = "total-mismatch"
	CodeProgression        = "difficulty-progression"
)

// Issue describes one validation defect. MilestoneIndex is -1 for
// path-level issues.
type Issue struct {
	Category       Category `json:"category"`
	Code           string   `json:"code"`
	MilestoneIndex int      `json:"milestone_index"`
	Message        string   `json:"message"`
	Fixable        bool     `json:"fixable"`
}

func (i Issue) String() string {
	if i.MilestoneIndex >= 0 {
		return fmt.Sprintf("[%s] milestone %d: %s", i.Category, i.MilestoneIndex, i.Message)
	}
	return fmt.Sprintf("[%s] %s", i.Category, i.Message)
}

// Fix records one repair applied to a path.
type Fix struct {
	Code           string `json:"code"`
	MilestoneIndex int    `json:"milestone_index"`
	Message        string `json:"message"`
}

// Report is the audit trail of a validate-and-repair run.
type Report struct {
	// Applied lists every repair made, in order.
	Applied []Fix `json:"applied,omitempty"`

	// Unresolved lists issues still present after the final pass.
	// Non-empty Unresolved with a STRUCTURAL category means the path
	// must be rejected.
	Unresolved []Issue `json:"unresolved,omitempty"`

	// Passes is the number of repair passes that ran.
	Passes int `json:"passes"`
}

// Repaired reports whether any fix was applied.
func (r Report) Repaired() bool { return len(r.Applied) > 0 }

// UnresolvedStructural returns the unresolved STRUCTURAL issues.
func (r Report) UnresolvedStructural() []Issue {
	var out []Issue
	for _, i := range r.Unresolved {
		if i.Category == CategoryStructural {
			out = append(out, i)
		}
	}
	return out
}

package draft

import (
	"context"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

// MockDrafter is a deterministic Drafter for testing.
// It returns canned milestones and records all inputs.
type MockDrafter struct {
	Milestones []learnpath.Milestone
	Err        error
	Calls      []Input
}

// Draft returns the canned milestones or error, recording the input.
func (m *MockDrafter) Draft(_ context.Context, input Input) ([]learnpath.Milestone, error) {
	m.Calls = append(m.Calls, input)
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]learnpath.Milestone, len(m.Milestones))
	for i, ms := range m.Milestones {
		out[i] = ms.Clone()
	}
	return out, nil
}

package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProfileData captures the learner's saved skill state and preferences.
type ProfileData struct {
	Version     int               `json:"version"`
	Skills      map[string]string `json:"skills"` // skill name → level
	WeeklyHours float64           `json:"weekly_hours"`
}

// Profile is a point-in-time save of the learner profile. The newest
// profile wins; older ones are kept for history and pruned.
type Profile struct {
	ID        int
	Timestamp time.Time
	Data      ProfileData
}

// ProfileRepo manages saved learner profiles.
type ProfileRepo interface {
	// Save stores a new profile version.
	Save(ctx context.Context, p *Profile) error

	// Latest returns the most recent profile, or nil if none exist.
	Latest(ctx context.Context) (*Profile, error)

	// Prune deletes all but the N most recent profiles.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PathEventData captures the outcome of one path generation.
type PathEventData struct {
	PathID            string
	Goal              string
	Domain            string
	Status            string // valid, repaired, degraded
	Milestones        int
	EffortHours       float64
	CalendarDays      float64
	OverallDifficulty string
	PathJSON          string // full path document
}

// PathEvent is a stored path generation event.
type PathEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PathEventData
}

// LLMUsageStat aggregates LLM usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns LLM request events, newest first.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMRequest returns one LLM request event by ID, or nil if not
	// found.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendPathGeneration records a completed path generation.
	AppendPathGeneration(ctx context.Context, data PathEventData) error

	// ListPathGenerations returns path generation events, newest first.
	ListPathGenerations(ctx context.Context, opts QueryOpts) ([]PathEvent, error)

	// GetPathGeneration returns the event for one path ID, or nil if
	// not found.
	GetPathGeneration(ctx context.Context, pathID string) (*PathEvent, error)
}

package learnpath

import "time"

// SkillLevel is a learner's proficiency in a single skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// Rank returns the ordinal position of a level (beginner=1 .. advanced=3).
// Unknown levels rank as beginner.
func (l SkillLevel) Rank() int {
	switch l {
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 1
	}
}

// Valid reports whether l is one of the known levels.
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// LevelFromRank is the inverse of Rank. Out-of-range values clamp to the
// nearest level.
func LevelFromRank(r int) SkillLevel {
	switch {
	case r <= 1:
		return LevelBeginner
	case r == 2:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// SkillRecord is the caller-owned description of one current skill.
// Read-only input to the engine.
type SkillRecord struct {
	Name        string     `json:"name"`
	Level       SkillLevel `json:"level"`
	Confidence  float64    `json:"confidence"`
	LastUpdated time.Time  `json:"last_updated"`
}

// MilestoneStatus tracks a milestone's lifecycle state. Paths are created
// with every milestone not_started; progress tracking happens outside this
// engine.
type MilestoneStatus string

const (
	StatusNotStarted MilestoneStatus = "not_started"
)

// ResourceType categorizes a learning resource.
type ResourceType string

const (
	ResourceVideo       ResourceType = "video"
	ResourceCourse      ResourceType = "course"
	ResourceArticle     ResourceType = "article"
	ResourceInteractive ResourceType = "interactive"
	ResourceBook        ResourceType = "book"
	ResourceTutorial    ResourceType = "tutorial"
)

// Resource is a single learning resource reference attached to a milestone.
type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
	Free  bool         `json:"free"`

	// NeedsCuration marks placeholder resources inserted by the repairer.
	// Downstream curation is expected to replace them.
	NeedsCuration bool `json:"needs_curation,omitempty"`
}

// Duration expresses an estimate in both focused effort and elapsed
// calendar time.
type Duration struct {
	EffortHours  float64 `json:"effort_hours"`
	CalendarDays float64 `json:"calendar_days"`
}

// Add returns the component-wise sum of two durations.
func (d Duration) Add(o Duration) Duration {
	return Duration{
		EffortHours:  d.EffortHours + o.EffortHours,
		CalendarDays: d.CalendarDays + o.CalendarDays,
	}
}

// Scale returns the duration multiplied by f in both components.
func (d Duration) Scale(f float64) Duration {
	return Duration{
		EffortHours:  d.EffortHours * f,
		CalendarDays: d.CalendarDays * f,
	}
}

// Milestone is one discrete unit of a learning path.
//
// ID is the milestone's position in the path's ordered sequence, assigned
// when the sequence is finalized. It is stable within one path only.
type Milestone struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	TargetSkills       []string        `json:"target_skills"`
	Difficulty         SkillLevel      `json:"difficulty"`
	EstimatedDuration  Duration        `json:"estimated_duration"`
	Resources          []Resource      `json:"resources"`
	AssessmentCriteria []string        `json:"assessment_criteria"`
	PrerequisiteIDs    []int           `json:"prerequisite_ids"`
	Synthesized        bool            `json:"is_synthesized_prerequisite"`
	Status             MilestoneStatus `json:"status"`
}

// Clone returns a deep copy of the milestone. The engine's transform
// passes return new values rather than mutating shared state.
func (m Milestone) Clone() Milestone {
	out := m
	out.TargetSkills = append([]string(nil), m.TargetSkills...)
	out.Resources = append([]Resource(nil), m.Resources...)
	out.AssessmentCriteria = append([]string(nil), m.AssessmentCriteria...)
	out.PrerequisiteIDs = append([]int(nil), m.PrerequisiteIDs...)
	return out
}

// ValidationStatus summarizes how the path made it through validation.
type ValidationStatus string

const (
	// StatusValid means the path passed validation with no repairs.
	StatusValid ValidationStatus = "valid"
	// StatusRepaired means at least one fixable defect was auto-repaired.
	StatusRepaired ValidationStatus = "repaired"
	// StatusDegraded means a fallback was used (no domain match or draft
	// failure) rather than full normal generation.
	StatusDegraded ValidationStatus = "degraded"
)

// LearningPath is the finalized plan returned to the caller. It is
// immutable once returned; callers persist or mutate copies externally.
type LearningPath struct {
	ID                string           `json:"id"`
	Goal              string           `json:"goal"`
	Domain            string           `json:"domain,omitempty"` // empty when unmapped
	Milestones        []Milestone      `json:"milestones"`
	TotalDuration     Duration         `json:"total_estimated_duration"`
	OverallDifficulty SkillLevel       `json:"overall_difficulty"`
	CreatedAt         time.Time        `json:"created_at"`
	ValidationStatus  ValidationStatus `json:"validation_status"`
}

// Clone returns a deep copy of the path.
func (p LearningPath) Clone() LearningPath {
	out := p
	out.Milestones = make([]Milestone, len(p.Milestones))
	for i, m := range p.Milestones {
		out.Milestones[i] = m.Clone()
	}
	return out
}

// DeriveOverallDifficulty returns the difficulty of the last
// non-prerequisite milestone, falling back to the last milestone of any
// kind, then beginner for an empty path.
func (p LearningPath) DeriveOverallDifficulty() SkillLevel {
	for i := len(p.Milestones) - 1; i >= 0; i-- {
		if !p.Milestones[i].Synthesized {
			return p.Milestones[i].Difficulty
		}
	}
	if n := len(p.Milestones); n > 0 {
		return p.Milestones[n-1].Difficulty
	}
	return LevelBeginner
}

// Preferences carries the learner's planning constraints.
type Preferences struct {
	// WeeklyHours is the learner's weekly time budget in hours. Must be > 0.
	WeeklyHours float64 `json:"weekly_hours_commitment"`
}

// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathcraft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPathID, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldGoal, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldDomain, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldStatus, v))
}

// Milestones applies equality check predicate on the "milestones" field. It's identical to MilestonesEQ.
func Milestones(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldMilestones, v))
}

// EffortHours applies equality check predicate on the "effort_hours" field. It's identical to EffortHoursEQ.
func EffortHours(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldEffortHours, v))
}

// CalendarDays applies equality check predicate on the "calendar_days" field. It's identical to CalendarDaysEQ.
func CalendarDays(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldCalendarDays, v))
}

// OverallDifficulty applies equality check predicate on the "overall_difficulty" field. It's identical to OverallDifficultyEQ.
func OverallDifficulty(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldOverallDifficulty, v))
}

// PathJSON applies equality check predicate on the "path_json" field. It's identical to PathJSONEQ.
func PathJSON(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPathJSON, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldPathID, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldGoal, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldDomain, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldStatus, v))
}

// MilestonesEQ applies the EQ predicate on the "milestones" field.
func MilestonesEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldMilestones, v))
}

// MilestonesNEQ applies the NEQ predicate on the "milestones" field.
func MilestonesNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldMilestones, v))
}

// MilestonesIn applies the In predicate on the "milestones" field.
func MilestonesIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldMilestones, vs...))
}

// MilestonesNotIn applies the NotIn predicate on the "milestones" field.
func MilestonesNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldMilestones, vs...))
}

// MilestonesGT applies the GT predicate on the "milestones" field.
func MilestonesGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldMilestones, v))
}

// MilestonesGTE applies the GTE predicate on the "milestones" field.
func MilestonesGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldMilestones, v))
}

// MilestonesLT applies the LT predicate on the "milestones" field.
func MilestonesLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldMilestones, v))
}

// MilestonesLTE applies the LTE predicate on the "milestones" field.
func MilestonesLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldMilestones, v))
}

// EffortHoursEQ applies the EQ predicate on the "effort_hours" field.
func EffortHoursEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldEffortHours, v))
}

// EffortHoursNEQ applies the NEQ predicate on the "effort_hours" field.
func EffortHoursNEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldEffortHours, v))
}

// EffortHoursIn applies the In predicate on the "effort_hours" field.
func EffortHoursIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldEffortHours, vs...))
}

// EffortHoursNotIn applies the NotIn predicate on the "effort_hours" field.
func EffortHoursNotIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldEffortHours, vs...))
}

// EffortHoursGT applies the GT predicate on the "effort_hours" field.
func EffortHoursGT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldEffortHours, v))
}

// EffortHoursGTE applies the GTE predicate on the "effort_hours" field.
func EffortHoursGTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldEffortHours, v))
}

// EffortHoursLT applies the LT predicate on the "effort_hours" field.
func EffortHoursLT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldEffortHours, v))
}

// EffortHoursLTE applies the LTE predicate on the "effort_hours" field.
func EffortHoursLTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldEffortHours, v))
}

// CalendarDaysEQ applies the EQ predicate on the "calendar_days" field.
func CalendarDaysEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldCalendarDays, v))
}

// CalendarDaysNEQ applies the NEQ predicate on the "calendar_days" field.
func CalendarDaysNEQ(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldCalendarDays, v))
}

// CalendarDaysIn applies the In predicate on the "calendar_days" field.
func CalendarDaysIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldCalendarDays, vs...))
}

// CalendarDaysNotIn applies the NotIn predicate on the "calendar_days" field.
func CalendarDaysNotIn(vs ...float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldCalendarDays, vs...))
}

// CalendarDaysGT applies the GT predicate on the "calendar_days" field.
func CalendarDaysGT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldCalendarDays, v))
}

// CalendarDaysGTE applies the GTE predicate on the "calendar_days" field.
func CalendarDaysGTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldCalendarDays, v))
}

// CalendarDaysLT applies the LT predicate on the "calendar_days" field.
func CalendarDaysLT(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldCalendarDays, v))
}

// CalendarDaysLTE applies the LTE predicate on the "calendar_days" field.
func CalendarDaysLTE(v float64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldCalendarDays, v))
}

// OverallDifficultyEQ applies the EQ predicate on the "overall_difficulty" field.
func OverallDifficultyEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldOverallDifficulty, v))
}

// OverallDifficultyNEQ applies the NEQ predicate on the "overall_difficulty" field.
func OverallDifficultyNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldOverallDifficulty, v))
}

// OverallDifficultyIn applies the In predicate on the "overall_difficulty" field.
func OverallDifficultyIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldOverallDifficulty, vs...))
}

// OverallDifficultyNotIn applies the NotIn predicate on the "overall_difficulty" field.
func OverallDifficultyNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldOverallDifficulty, vs...))
}

// OverallDifficultyGT applies the GT predicate on the "overall_difficulty" field.
func OverallDifficultyGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldOverallDifficulty, v))
}

// OverallDifficultyGTE applies the GTE predicate on the "overall_difficulty" field.
func OverallDifficultyGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldOverallDifficulty, v))
}

// OverallDifficultyLT applies the LT predicate on the "overall_difficulty" field.
func OverallDifficultyLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldOverallDifficulty, v))
}

// OverallDifficultyLTE applies the LTE predicate on the "overall_difficulty" field.
func OverallDifficultyLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldOverallDifficulty, v))
}

// OverallDifficultyContains applies the Contains predicate on the "overall_difficulty" field.
func OverallDifficultyContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldOverallDifficulty, v))
}

// OverallDifficultyHasPrefix applies the HasPrefix predicate on the "overall_difficulty" field.
func OverallDifficultyHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldOverallDifficulty, v))
}

// OverallDifficultyHasSuffix applies the HasSuffix predicate on the "overall_difficulty" field.
func OverallDifficultyHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldOverallDifficulty, v))
}

// OverallDifficultyEqualFold applies the EqualFold predicate on the "overall_difficulty" field.
func OverallDifficultyEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldOverallDifficulty, v))
}

// OverallDifficultyContainsFold applies the ContainsFold predicate on the "overall_difficulty" field.
func OverallDifficultyContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldOverallDifficulty, v))
}

// PathJSONEQ applies the EQ predicate on the "path_json" field.
func PathJSONEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPathJSON, v))
}

// PathJSONNEQ applies the NEQ predicate on the "path_json" field.
func PathJSONNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldPathJSON, v))
}

// PathJSONIn applies the In predicate on the "path_json" field.
func PathJSONIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldPathJSON, vs...))
}

// PathJSONNotIn applies the NotIn predicate on the "path_json" field.
func PathJSONNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldPathJSON, vs...))
}

// PathJSONGT applies the GT predicate on the "path_json" field.
func PathJSONGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldPathJSON, v))
}

// PathJSONGTE applies the GTE predicate on the "path_json" field.
func PathJSONGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldPathJSON, v))
}

// PathJSONLT applies the LT predicate on the "path_json" field.
func PathJSONLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldPathJSON, v))
}

// PathJSONLTE applies the LTE predicate on the "path_json" field.
func PathJSONLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldPathJSON, v))
}

// PathJSONContains applies the Contains predicate on the "path_json" field.
func PathJSONContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldPathJSON, v))
}

// PathJSONHasPrefix applies the HasPrefix predicate on the "path_json" field.
func PathJSONHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldPathJSON, v))
}

// PathJSONHasSuffix applies the HasSuffix predicate on the "path_json" field.
func PathJSONHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldPathJSON, v))
}

// PathJSONEqualFold applies the EqualFold predicate on the "path_json" field.
func PathJSONEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldPathJSON, v))
}

// PathJSONContainsFold applies the ContainsFold predicate on the "path_json" field.
func PathJSONContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldPathJSON, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.NotPredicates(p))
}

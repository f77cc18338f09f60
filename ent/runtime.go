// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathcraft/ent/llmrequestevent"
	"github.com/abhisek/pathcraft/ent/pathevent"
	"github.com/abhisek/pathcraft/ent/profile"
	"github.com/abhisek/pathcraft/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	patheventMixin := schema.PathEvent{}.Mixin()
	patheventMixinFields0 := patheventMixin[0].Fields()
	_ = patheventMixinFields0
	patheventFields := schema.PathEvent{}.Fields()
	_ = patheventFields
	// patheventDescTimestamp is the schema descriptor for timestamp field.
	patheventDescTimestamp := patheventMixinFields0[1].Descriptor()
	// pathevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathevent.DefaultTimestamp = patheventDescTimestamp.Default.(func() time.Time)
	// patheventDescDomain is the schema descriptor for domain field.
	patheventDescDomain := patheventFields[2].Descriptor()
	// pathevent.DefaultDomain holds the default value on creation for the domain field.
	pathevent.DefaultDomain = patheventDescDomain.Default.(string)
	// patheventDescMilestones is the schema descriptor for milestones field.
	patheventDescMilestones := patheventFields[4].Descriptor()
	// pathevent.DefaultMilestones holds the default value on creation for the milestones field.
	pathevent.DefaultMilestones = patheventDescMilestones.Default.(int)
	// patheventDescEffortHours is the schema descriptor for effort_hours field.
	patheventDescEffortHours := patheventFields[5].Descriptor()
	// pathevent.DefaultEffortHours holds the default value on creation for the effort_hours field.
	pathevent.DefaultEffortHours = patheventDescEffortHours.Default.(float64)
	// patheventDescCalendarDays is the schema descriptor for calendar_days field.
	patheventDescCalendarDays := patheventFields[6].Descriptor()
	// pathevent.DefaultCalendarDays holds the default value on creation for the calendar_days field.
	pathevent.DefaultCalendarDays = patheventDescCalendarDays.Default.(float64)
	// patheventDescOverallDifficulty is the schema descriptor for overall_difficulty field.
	patheventDescOverallDifficulty := patheventFields[7].Descriptor()
	// pathevent.DefaultOverallDifficulty holds the default value on creation for the overall_difficulty field.
	pathevent.DefaultOverallDifficulty = patheventDescOverallDifficulty.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescTimestamp is the schema descriptor for timestamp field.
	profileDescTimestamp := profileFields[0].Descriptor()
	// profile.DefaultTimestamp holds the default value on creation for the timestamp field.
	profile.DefaultTimestamp = profileDescTimestamp.Default.(func() time.Time)
}

package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathcraft/ent"
	"github.com/abhisek/pathcraft/ent/pathevent"
)

func (r *eventRepo) AppendPathGeneration(ctx context.Context, data PathEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathEvent.Create().
		SetSequence(seqNum).
		SetPathID(data.PathID).
		SetGoal(data.Goal).
		SetDomain(data.Domain).
		SetStatus(data.Status).
		SetMilestones(data.Milestones).
		SetEffortHours(data.EffortHours).
		SetCalendarDays(data.CalendarDays).
		SetOverallDifficulty(data.OverallDifficulty).
		SetPathJSON(data.PathJSON).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save path event: %w", err)
	}

	return nil
}

func (r *eventRepo) ListPathGenerations(ctx context.Context, opts QueryOpts) ([]PathEvent, error) {
	q := r.client.PathEvent.Query().
		Order(ent.Desc(pathevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(pathevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(pathevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(pathevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(pathevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query path events: %w", err)
	}

	out := make([]PathEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, entPathEvent(e))
	}
	return out, nil
}

func (r *eventRepo) GetPathGeneration(ctx context.Context, pathID string) (*PathEvent, error) {
	e, err := r.client.PathEvent.Query().
		Where(pathevent.PathID(pathID)).
		Order(ent.Desc(pathevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query path event %s: %w", pathID, err)
	}
	pe := entPathEvent(e)
	return &pe, nil
}

func entPathEvent(e *ent.PathEvent) PathEvent {
	return PathEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		PathEventData: PathEventData{
			PathID:            e.PathID,
			Goal:              e.Goal,
			Domain:            e.Domain,
			Status:            e.Status,
			Milestones:        e.Milestones,
			EffortHours:       e.EffortHours,
			CalendarDays:      e.CalendarDays,
			OverallDifficulty: e.OverallDifficulty,
			PathJSON:          e.PathJSON,
		},
	}
}

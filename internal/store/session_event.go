package store

import (
	"context"
	"fmt"

	"github.com/rsahni/topiq/ent"
	"github.com/rsahni/topiq/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetTopicID(data.TopicID).
		SetTopicTitle(data.TopicTitle).
		SetAction(data.Action).
		SetRounds(data.Rounds).
		SetStartMastery(data.StartMastery).
		SetFinalMastery(data.FinalMastery).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error) {
	q := r.client.SessionEvent.Query()
	if opts.LearnerID != "" {
		q = q.Where(sessionevent.LearnerID(opts.LearnerID))
	}
	if opts.TopicID != "" {
		q = q.Where(sessionevent.TopicID(opts.TopicID))
	}
	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	q = q.Order(ent.Asc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := make([]SessionEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:    e.SessionID,
				LearnerID:    e.LearnerID,
				TopicID:      e.TopicID,
				TopicTitle:   e.TopicTitle,
				Action:       e.Action,
				Rounds:       e.Rounds,
				StartMastery: e.StartMastery,
				FinalMastery: e.FinalMastery,
			},
		})
	}
	return records, nil
}

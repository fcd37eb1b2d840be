package store

import (
	"context"
	"fmt"

	"github.com/rsahni/topiq/ent"
	"github.com/rsahni/topiq/ent/roundevent"
)

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetTopicID(data.TopicID).
		SetRound(data.Round).
		SetQuestion(data.Question).
		SetAnswer(data.Answer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetScore(data.Score).
		SetMasteryBefore(data.MasteryBefore).
		SetMasteryAfter(data.MasteryAfter).
		SetLevel(data.Level).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRoundEvents(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error) {
	q := r.client.RoundEvent.Query()
	if opts.LearnerID != "" {
		q = q.Where(roundevent.LearnerID(opts.LearnerID))
	}
	if opts.TopicID != "" {
		q = q.Where(roundevent.TopicID(opts.TopicID))
	}
	if opts.After > 0 {
		q = q.Where(roundevent.SequenceGT(opts.After))
	}
	q = q.Order(ent.Asc(roundevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}
	return roundRecords(events), nil
}

func (r *eventRepo) RoundsForSession(ctx context.Context, sessionID string) ([]RoundEventRecord, error) {
	events, err := r.client.RoundEvent.Query().
		Where(roundevent.SessionID(sessionID)).
		Order(ent.Asc(roundevent.FieldRound)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session rounds: %w", err)
	}
	return roundRecords(events), nil
}

func roundRecords(events []*ent.RoundEvent) []RoundEventRecord {
	records := make([]RoundEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, RoundEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			RoundEventData: RoundEventData{
				SessionID:     e.SessionID,
				LearnerID:     e.LearnerID,
				TopicID:       e.TopicID,
				Round:         e.Round,
				Question:      e.Question,
				Answer:        e.Answer,
				CorrectAnswer: e.CorrectAnswer,
				Score:         e.Score,
				MasteryBefore: e.MasteryBefore,
				MasteryAfter:  e.MasteryAfter,
				Level:         e.Level,
			},
		})
	}
	return records
}

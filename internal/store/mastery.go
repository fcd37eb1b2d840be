package store

import (
	"context"
	"fmt"

	"github.com/rsahni/topiq/ent"
	"github.com/rsahni/topiq/ent/masteryrecord"
)

// masteryRepo implements MasteryRepo backed by ent.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) ReadMastery(ctx context.Context, learnerID, topicID string) (float64, bool, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query mastery record: %w", err)
	}
	return rec.Mastery, true, nil
}

func (r *masteryRepo) WriteMastery(ctx context.Context, learnerID, topicID string, mastery float64) error {
	existing, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.TopicID(topicID),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetMastery(mastery).Save(ctx)
		if err != nil {
			return fmt.Errorf("update mastery record: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.MasteryRecord.Create().
			SetLearnerID(learnerID).
			SetTopicID(topicID).
			SetMastery(mastery).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery record: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query mastery record: %w", err)
	}
}

func (r *masteryRepo) All(ctx context.Context, learnerID string) ([]MasteryEntry, error) {
	recs, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.LearnerID(learnerID)).
		Order(ent.Desc(masteryrecord.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}

	entries := make([]MasteryEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, MasteryEntry{
			LearnerID: rec.LearnerID,
			TopicID:   rec.TopicID,
			Mastery:   rec.Mastery,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	return entries, nil
}

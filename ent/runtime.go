// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rsahni/topiq/ent/llmrequestevent"
	"github.com/rsahni/topiq/ent/masteryrecord"
	"github.com/rsahni/topiq/ent/roundevent"
	"github.com/rsahni/topiq/ent/schema"
	"github.com/rsahni/topiq/ent/sessionevent"
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
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
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
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescLearnerID is the schema descriptor for learner_id field.
	masteryrecordDescLearnerID := masteryrecordFields[0].Descriptor()
	// masteryrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryrecord.LearnerIDValidator = masteryrecordDescLearnerID.Validators[0].(func(string) error)
	// masteryrecordDescTopicID is the schema descriptor for topic_id field.
	masteryrecordDescTopicID := masteryrecordFields[1].Descriptor()
	// masteryrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	masteryrecord.TopicIDValidator = masteryrecordDescTopicID.Validators[0].(func(string) error)
	// masteryrecordDescMastery is the schema descriptor for mastery field.
	masteryrecordDescMastery := masteryrecordFields[2].Descriptor()
	// masteryrecord.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	masteryrecord.MasteryValidator = func() func(float64) error {
		validators := masteryrecordDescMastery.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(mastery float64) error {
			for _, fn := range fns {
				if err := fn(mastery); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescSessionID is the schema descriptor for session_id field.
	roundeventDescSessionID := roundeventFields[0].Descriptor()
	// roundevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	roundevent.SessionIDValidator = roundeventDescSessionID.Validators[0].(func(string) error)
	// roundeventDescLearnerID is the schema descriptor for learner_id field.
	roundeventDescLearnerID := roundeventFields[1].Descriptor()
	// roundevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	roundevent.LearnerIDValidator = roundeventDescLearnerID.Validators[0].(func(string) error)
	// roundeventDescTopicID is the schema descriptor for topic_id field.
	roundeventDescTopicID := roundeventFields[2].Descriptor()
	// roundevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	roundevent.TopicIDValidator = roundeventDescTopicID.Validators[0].(func(string) error)
	// roundeventDescRound is the schema descriptor for round field.
	roundeventDescRound := roundeventFields[3].Descriptor()
	// roundevent.RoundValidator is a validator for the "round" field. It is called by the builders before save.
	roundevent.RoundValidator = roundeventDescRound.Validators[0].(func(int) error)
	// roundeventDescQuestion is the schema descriptor for question field.
	roundeventDescQuestion := roundeventFields[4].Descriptor()
	// roundevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	roundevent.QuestionValidator = roundeventDescQuestion.Validators[0].(func(string) error)
	// roundeventDescAnswer is the schema descriptor for answer field.
	roundeventDescAnswer := roundeventFields[5].Descriptor()
	// roundevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	roundevent.AnswerValidator = roundeventDescAnswer.Validators[0].(func(string) error)
	// roundeventDescCorrectAnswer is the schema descriptor for correct_answer field.
	roundeventDescCorrectAnswer := roundeventFields[6].Descriptor()
	// roundevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	roundevent.CorrectAnswerValidator = roundeventDescCorrectAnswer.Validators[0].(func(string) error)
	// roundeventDescScore is the schema descriptor for score field.
	roundeventDescScore := roundeventFields[7].Descriptor()
	// roundevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	roundevent.ScoreValidator = func() func(float64) error {
		validators := roundeventDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// roundeventDescLevel is the schema descriptor for level field.
	roundeventDescLevel := roundeventFields[10].Descriptor()
	// roundevent.DefaultLevel holds the default value on creation for the level field.
	roundevent.DefaultLevel = roundeventDescLevel.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[2].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(string) error)
	// sessioneventDescTopicTitle is the schema descriptor for topic_title field.
	sessioneventDescTopicTitle := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTopicTitle holds the default value on creation for the topic_title field.
	sessionevent.DefaultTopicTitle = sessioneventDescTopicTitle.Default.(string)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[4].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescRounds is the schema descriptor for rounds field.
	sessioneventDescRounds := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultRounds holds the default value on creation for the rounds field.
	sessionevent.DefaultRounds = sessioneventDescRounds.Default.(int)
	// sessioneventDescStartMastery is the schema descriptor for start_mastery field.
	sessioneventDescStartMastery := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultStartMastery holds the default value on creation for the start_mastery field.
	sessionevent.DefaultStartMastery = sessioneventDescStartMastery.Default.(float64)
	// sessioneventDescFinalMastery is the schema descriptor for final_mastery field.
	sessioneventDescFinalMastery := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultFinalMastery holds the default value on creation for the final_mastery field.
	sessionevent.DefaultFinalMastery = sessioneventDescFinalMastery.Default.(float64)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsahni/topiq/ent/predicate"
	"github.com/rsahni/topiq/ent/roundevent"
)

// RoundEventUpdate is the builder for updating RoundEvent entities.
type RoundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoundEventMutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdate) Where(ps ...predicate.RoundEvent) *RoundEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RoundEventUpdate) SetSessionID(v string) *RoundEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableSessionID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RoundEventUpdate) SetLearnerID(v string) *RoundEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableLearnerID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *RoundEventUpdate) SetTopicID(v string) *RoundEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTopicID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *RoundEventUpdate) SetRound(v int) *RoundEventUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRound(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *RoundEventUpdate) AddRound(v int) *RoundEventUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RoundEventUpdate) SetQuestion(v string) *RoundEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableQuestion(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *RoundEventUpdate) SetAnswer(v string) *RoundEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableAnswer(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *RoundEventUpdate) SetCorrectAnswer(v string) *RoundEventUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableCorrectAnswer(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdate) SetScore(v float64) *RoundEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableScore(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdate) AddScore(v float64) *RoundEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *RoundEventUpdate) SetMasteryBefore(v float64) *RoundEventUpdate {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableMasteryBefore(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *RoundEventUpdate) AddMasteryBefore(v float64) *RoundEventUpdate {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *RoundEventUpdate) SetMasteryAfter(v float64) *RoundEventUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableMasteryAfter(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *RoundEventUpdate) AddMasteryAfter(v float64) *RoundEventUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *RoundEventUpdate) SetLevel(v string) *RoundEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableLevel(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdate) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := roundevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := roundevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := roundevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := roundevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := roundevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := roundevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := roundevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(roundevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(roundevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(roundevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(roundevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(roundevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(roundevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(roundevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(roundevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(roundevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(roundevent.FieldLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundEventUpdateOne is the builder for updating a single RoundEvent entity.
type RoundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RoundEventUpdateOne) SetSessionID(v string) *RoundEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableSessionID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RoundEventUpdateOne) SetLearnerID(v string) *RoundEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableLearnerID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *RoundEventUpdateOne) SetTopicID(v string) *RoundEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTopicID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *RoundEventUpdateOne) SetRound(v int) *RoundEventUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRound(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *RoundEventUpdateOne) AddRound(v int) *RoundEventUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RoundEventUpdateOne) SetQuestion(v string) *RoundEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableQuestion(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *RoundEventUpdateOne) SetAnswer(v string) *RoundEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableAnswer(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *RoundEventUpdateOne) SetCorrectAnswer(v string) *RoundEventUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableCorrectAnswer(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdateOne) SetScore(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableScore(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdateOne) AddScore(v float64) *RoundEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *RoundEventUpdateOne) SetMasteryBefore(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableMasteryBefore(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *RoundEventUpdateOne) AddMasteryBefore(v float64) *RoundEventUpdateOne {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *RoundEventUpdateOne) SetMasteryAfter(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableMasteryAfter(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *RoundEventUpdateOne) AddMasteryAfter(v float64) *RoundEventUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *RoundEventUpdateOne) SetLevel(v string) *RoundEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableLevel(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdateOne) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdateOne) Where(ps ...predicate.RoundEvent) *RoundEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundEventUpdateOne) Select(field string, fields ...string) *RoundEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundEvent entity.
func (_u *RoundEventUpdateOne) Save(ctx context.Context) (*RoundEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdateOne) SaveX(ctx context.Context) *RoundEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := roundevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := roundevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := roundevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := roundevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := roundevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := roundevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := roundevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdateOne) sqlSave(ctx context.Context) (_node *RoundEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundevent.FieldID)
		for _, f := range fields {
			if !roundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(roundevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(roundevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(roundevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(roundevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(roundevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(roundevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(roundevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(roundevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(roundevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(roundevent.FieldLevel, field.TypeString, value)
	}
	_node = &RoundEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

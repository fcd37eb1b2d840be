// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsahni/topiq/ent/roundevent"
)

// RoundEventCreate is the builder for creating a RoundEvent entity.
type RoundEventCreate struct {
	config
	mutation *RoundEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RoundEventCreate) SetSequence(v int64) *RoundEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoundEventCreate) SetTimestamp(v time.Time) *RoundEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTimestamp(v *time.Time) *RoundEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RoundEventCreate) SetSessionID(v string) *RoundEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *RoundEventCreate) SetLearnerID(v string) *RoundEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *RoundEventCreate) SetTopicID(v string) *RoundEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *RoundEventCreate) SetRound(v int) *RoundEventCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *RoundEventCreate) SetQuestion(v string) *RoundEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *RoundEventCreate) SetAnswer(v string) *RoundEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *RoundEventCreate) SetCorrectAnswer(v string) *RoundEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RoundEventCreate) SetScore(v float64) *RoundEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMasteryBefore sets the "mastery_before" field.
func (_c *RoundEventCreate) SetMasteryBefore(v float64) *RoundEventCreate {
	_c.mutation.SetMasteryBefore(v)
	return _c
}

// SetMasteryAfter sets the "mastery_after" field.
func (_c *RoundEventCreate) SetMasteryAfter(v float64) *RoundEventCreate {
	_c.mutation.SetMasteryAfter(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *RoundEventCreate) SetLevel(v string) *RoundEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableLevel(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// Mutation returns the RoundEventMutation object of the builder.
func (_c *RoundEventCreate) Mutation() *RoundEventMutation {
	return _c.mutation
}

// Save creates the RoundEvent in the database.
func (_c *RoundEventCreate) Save(ctx context.Context) (*RoundEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundEventCreate) SaveX(ctx context.Context) *RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := roundevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := roundevent.DefaultLevel
		_c.mutation.SetLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoundEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoundEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RoundEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "RoundEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := roundevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "RoundEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := roundevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "RoundEvent.round"`)}
	}
	if v, ok := _c.mutation.Round(); ok {
		if err := roundevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "RoundEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := roundevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "RoundEvent.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := roundevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "RoundEvent.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := roundevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RoundEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := roundevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryBefore(); !ok {
		return &ValidationError{Name: "mastery_before", err: errors.New(`ent: missing required field "RoundEvent.mastery_before"`)}
	}
	if _, ok := _c.mutation.MasteryAfter(); !ok {
		return &ValidationError{Name: "mastery_after", err: errors.New(`ent: missing required field "RoundEvent.mastery_after"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "RoundEvent.level"`)}
	}
	return nil
}

func (_c *RoundEventCreate) sqlSave(ctx context.Context) (*RoundEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoundEventCreate) createSpec() (*RoundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundevent.Table, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(roundevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(roundevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(roundevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(roundevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(roundevent.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(roundevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(roundevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(roundevent.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MasteryBefore(); ok {
		_spec.SetField(roundevent.FieldMasteryBefore, field.TypeFloat64, value)
		_node.MasteryBefore = value
	}
	if value, ok := _c.mutation.MasteryAfter(); ok {
		_spec.SetField(roundevent.FieldMasteryAfter, field.TypeFloat64, value)
		_node.MasteryAfter = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(roundevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	return _node, _spec
}

// RoundEventCreateBulk is the builder for creating many RoundEvent entities in bulk.
type RoundEventCreateBulk struct {
	config
	err      error
	builders []*RoundEventCreate
}

// Save creates the RoundEvent entities in the database.
func (_c *RoundEventCreateBulk) Save(ctx context.Context) ([]*RoundEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoundEventCreateBulk) SaveX(ctx context.Context) []*RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

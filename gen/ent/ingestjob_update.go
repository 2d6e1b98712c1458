// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Blockify0/collabnotes-ai/gen/ent/ingestjob"
	"github.com/Blockify0/collabnotes-ai/gen/ent/predicate"
)

// IngestJobUpdate is the builder for updating IngestJob entities.
type IngestJobUpdate struct {
	config
	hooks    []Hook
	mutation *IngestJobMutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdate) Where(ps ...predicate.IngestJob) *IngestJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *IngestJobUpdate) SetKind(v string) *IngestJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableKind(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *IngestJobUpdate) SetMediaType(v string) *IngestJobUpdate {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableMediaType(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *IngestJobUpdate) ClearMediaType() *IngestJobUpdate {
	_u.mutation.ClearMediaType()
	return _u
}

// SetInputBytes sets the "input_bytes" field.
func (_u *IngestJobUpdate) SetInputBytes(v int64) *IngestJobUpdate {
	_u.mutation.ResetInputBytes()
	_u.mutation.SetInputBytes(v)
	return _u
}

// SetNillableInputBytes sets the "input_bytes" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableInputBytes(v *int64) *IngestJobUpdate {
	if v != nil {
		_u.SetInputBytes(*v)
	}
	return _u
}

// AddInputBytes adds value to the "input_bytes" field.
func (_u *IngestJobUpdate) AddInputBytes(v int64) *IngestJobUpdate {
	_u.mutation.AddInputBytes(v)
	return _u
}

// SetUnits sets the "units" field.
func (_u *IngestJobUpdate) SetUnits(v int) *IngestJobUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableUnits(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *IngestJobUpdate) AddUnits(v int) *IngestJobUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *IngestJobUpdate) ClearUnits() *IngestJobUpdate {
	_u.mutation.ClearUnits()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdate) SetStatus(v string) *IngestJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStatus(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *IngestJobUpdate) SetErrorKind(v string) *IngestJobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableErrorKind(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *IngestJobUpdate) ClearErrorKind() *IngestJobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdate) SetErrorMessage(v string) *IngestJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableErrorMessage(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdate) ClearErrorMessage() *IngestJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *IngestJobUpdate) SetRequestID(v string) *IngestJobUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableRequestID(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *IngestJobUpdate) ClearRequestID() *IngestJobUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdate) SetStartedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStartedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdate) SetFinishedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFinishedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdate) ClearFinishedAt() *IngestJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *IngestJobUpdate) SetDurationMs(v int64) *IngestJobUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableDurationMs(v *int64) *IngestJobUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *IngestJobUpdate) AddDurationMs(v int64) *IngestJobUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *IngestJobUpdate) ClearDurationMs() *IngestJobUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdate) Mutation() *IngestJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ingestjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "IngestJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ingestjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(ingestjob.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(ingestjob.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.InputBytes(); ok {
		_spec.SetField(ingestjob.FieldInputBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputBytes(); ok {
		_spec.AddField(ingestjob.FieldInputBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(ingestjob.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(ingestjob.FieldUnits, field.TypeInt, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(ingestjob.FieldUnits, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(ingestjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(ingestjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(ingestjob.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(ingestjob.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ingestjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ingestjob.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(ingestjob.FieldDurationMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestJobUpdateOne is the builder for updating a single IngestJob entity.
type IngestJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestJobMutation
}

// SetKind sets the "kind" field.
func (_u *IngestJobUpdateOne) SetKind(v string) *IngestJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableKind(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *IngestJobUpdateOne) SetMediaType(v string) *IngestJobUpdateOne {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableMediaType(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *IngestJobUpdateOne) ClearMediaType() *IngestJobUpdateOne {
	_u.mutation.ClearMediaType()
	return _u
}

// SetInputBytes sets the "input_bytes" field.
func (_u *IngestJobUpdateOne) SetInputBytes(v int64) *IngestJobUpdateOne {
	_u.mutation.ResetInputBytes()
	_u.mutation.SetInputBytes(v)
	return _u
}

// SetNillableInputBytes sets the "input_bytes" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableInputBytes(v *int64) *IngestJobUpdateOne {
	if v != nil {
		_u.SetInputBytes(*v)
	}
	return _u
}

// AddInputBytes adds value to the "input_bytes" field.
func (_u *IngestJobUpdateOne) AddInputBytes(v int64) *IngestJobUpdateOne {
	_u.mutation.AddInputBytes(v)
	return _u
}

// SetUnits sets the "units" field.
func (_u *IngestJobUpdateOne) SetUnits(v int) *IngestJobUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableUnits(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *IngestJobUpdateOne) AddUnits(v int) *IngestJobUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *IngestJobUpdateOne) ClearUnits() *IngestJobUpdateOne {
	_u.mutation.ClearUnits()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdateOne) SetStatus(v string) *IngestJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStatus(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *IngestJobUpdateOne) SetErrorKind(v string) *IngestJobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableErrorKind(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *IngestJobUpdateOne) ClearErrorKind() *IngestJobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdateOne) SetErrorMessage(v string) *IngestJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableErrorMessage(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdateOne) ClearErrorMessage() *IngestJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *IngestJobUpdateOne) SetRequestID(v string) *IngestJobUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableRequestID(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *IngestJobUpdateOne) ClearRequestID() *IngestJobUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdateOne) SetStartedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStartedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdateOne) SetFinishedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdateOne) ClearFinishedAt() *IngestJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *IngestJobUpdateOne) SetDurationMs(v int64) *IngestJobUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableDurationMs(v *int64) *IngestJobUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *IngestJobUpdateOne) AddDurationMs(v int64) *IngestJobUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *IngestJobUpdateOne) ClearDurationMs() *IngestJobUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdateOne) Mutation() *IngestJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdateOne) Where(ps ...predicate.IngestJob) *IngestJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestJobUpdateOne) Select(field string, fields ...string) *IngestJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestJob entity.
func (_u *IngestJobUpdateOne) Save(ctx context.Context) (*IngestJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdateOne) SaveX(ctx context.Context) *IngestJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ingestjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "IngestJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestJobUpdateOne) sqlSave(ctx context.Context) (_node *IngestJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestjob.FieldID)
		for _, f := range fields {
			if !ingestjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestjob.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ingestjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(ingestjob.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(ingestjob.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.InputBytes(); ok {
		_spec.SetField(ingestjob.FieldInputBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputBytes(); ok {
		_spec.AddField(ingestjob.FieldInputBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(ingestjob.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(ingestjob.FieldUnits, field.TypeInt, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(ingestjob.FieldUnits, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(ingestjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(ingestjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(ingestjob.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(ingestjob.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ingestjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ingestjob.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(ingestjob.FieldDurationMs, field.TypeInt64)
	}
	_node = &IngestJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

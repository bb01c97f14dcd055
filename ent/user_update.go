// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rgoyal/studyhall/ent/predicate"
	"github.com/rgoyal/studyhall/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdate) SetTimezone(v string) *UserUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTimezone(v *string) *UserUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *UserUpdate) SetDaysOfWeek(v []string) *UserUpdate {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// AppendDaysOfWeek appends value to the "days_of_week" field.
func (_u *UserUpdate) AppendDaysOfWeek(v []string) *UserUpdate {
	_u.mutation.AppendDaysOfWeek(v)
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *UserUpdate) ClearDaysOfWeek() *UserUpdate {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetStudyTimes sets the "study_times" field.
func (_u *UserUpdate) SetStudyTimes(v []string) *UserUpdate {
	_u.mutation.SetStudyTimes(v)
	return _u
}

// AppendStudyTimes appends value to the "study_times" field.
func (_u *UserUpdate) AppendStudyTimes(v []string) *UserUpdate {
	_u.mutation.AppendStudyTimes(v)
	return _u
}

// ClearStudyTimes clears the value of the "study_times" field.
func (_u *UserUpdate) ClearStudyTimes() *UserUpdate {
	_u.mutation.ClearStudyTimes()
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *UserUpdate) SetEducationLevel(v string) *UserUpdate {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEducationLevel(v *string) *UserUpdate {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *UserUpdate) SetSubjects(v []string) *UserUpdate {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *UserUpdate) AppendSubjects(v []string) *UserUpdate {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *UserUpdate) ClearSubjects() *UserUpdate {
	_u.mutation.ClearSubjects()
	return _u
}

// SetStudyStyle sets the "study_style" field.
func (_u *UserUpdate) SetStudyStyle(v string) *UserUpdate {
	_u.mutation.SetStudyStyle(v)
	return _u
}

// SetNillableStudyStyle sets the "study_style" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStudyStyle(v *string) *UserUpdate {
	if v != nil {
		_u.SetStudyStyle(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(user.FieldDaysOfWeek, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysOfWeek(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldDaysOfWeek, value)
		})
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(user.FieldDaysOfWeek, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyTimes(); ok {
		_spec.SetField(user.FieldStudyTimes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStudyTimes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldStudyTimes, value)
		})
	}
	if _u.mutation.StudyTimesCleared() {
		_spec.ClearField(user.FieldStudyTimes, field.TypeJSON)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(user.FieldEducationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(user.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(user.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyStyle(); ok {
		_spec.SetField(user.FieldStudyStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdateOne) SetTimezone(v string) *UserUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTimezone(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *UserUpdateOne) SetDaysOfWeek(v []string) *UserUpdateOne {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// AppendDaysOfWeek appends value to the "days_of_week" field.
func (_u *UserUpdateOne) AppendDaysOfWeek(v []string) *UserUpdateOne {
	_u.mutation.AppendDaysOfWeek(v)
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *UserUpdateOne) ClearDaysOfWeek() *UserUpdateOne {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetStudyTimes sets the "study_times" field.
func (_u *UserUpdateOne) SetStudyTimes(v []string) *UserUpdateOne {
	_u.mutation.SetStudyTimes(v)
	return _u
}

// AppendStudyTimes appends value to the "study_times" field.
func (_u *UserUpdateOne) AppendStudyTimes(v []string) *UserUpdateOne {
	_u.mutation.AppendStudyTimes(v)
	return _u
}

// ClearStudyTimes clears the value of the "study_times" field.
func (_u *UserUpdateOne) ClearStudyTimes() *UserUpdateOne {
	_u.mutation.ClearStudyTimes()
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *UserUpdateOne) SetEducationLevel(v string) *UserUpdateOne {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEducationLevel(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *UserUpdateOne) SetSubjects(v []string) *UserUpdateOne {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *UserUpdateOne) AppendSubjects(v []string) *UserUpdateOne {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *UserUpdateOne) ClearSubjects() *UserUpdateOne {
	_u.mutation.ClearSubjects()
	return _u
}

// SetStudyStyle sets the "study_style" field.
func (_u *UserUpdateOne) SetStudyStyle(v string) *UserUpdateOne {
	_u.mutation.SetStudyStyle(v)
	return _u
}

// SetNillableStudyStyle sets the "study_style" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStudyStyle(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetStudyStyle(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(user.FieldDaysOfWeek, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysOfWeek(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldDaysOfWeek, value)
		})
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(user.FieldDaysOfWeek, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyTimes(); ok {
		_spec.SetField(user.FieldStudyTimes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStudyTimes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldStudyTimes, value)
		})
	}
	if _u.mutation.StudyTimesCleared() {
		_spec.ClearField(user.FieldStudyTimes, field.TypeJSON)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(user.FieldEducationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(user.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(user.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyStyle(); ok {
		_spec.SetField(user.FieldStudyStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

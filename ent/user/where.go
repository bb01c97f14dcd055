// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rgoyal/studyhall/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTimezone, v))
}

// EducationLevel applies equality check predicate on the "education_level" field. It's identical to EducationLevelEQ.
func EducationLevel(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEducationLevel, v))
}

// StudyStyle applies equality check predicate on the "study_style" field. It's identical to StudyStyleEQ.
func StudyStyle(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStudyStyle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldTimezone, v))
}

// DaysOfWeekIsNil applies the IsNil predicate on the "days_of_week" field.
func DaysOfWeekIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDaysOfWeek))
}

// DaysOfWeekNotNil applies the NotNil predicate on the "days_of_week" field.
func DaysOfWeekNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDaysOfWeek))
}

// StudyTimesIsNil applies the IsNil predicate on the "study_times" field.
func StudyTimesIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldStudyTimes))
}

// StudyTimesNotNil applies the NotNil predicate on the "study_times" field.
func StudyTimesNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldStudyTimes))
}

// EducationLevelEQ applies the EQ predicate on the "education_level" field.
func EducationLevelEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEducationLevel, v))
}

// EducationLevelNEQ applies the NEQ predicate on the "education_level" field.
func EducationLevelNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEducationLevel, v))
}

// EducationLevelIn applies the In predicate on the "education_level" field.
func EducationLevelIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEducationLevel, vs...))
}

// EducationLevelNotIn applies the NotIn predicate on the "education_level" field.
func EducationLevelNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEducationLevel, vs...))
}

// EducationLevelGT applies the GT predicate on the "education_level" field.
func EducationLevelGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEducationLevel, v))
}

// EducationLevelGTE applies the GTE predicate on the "education_level" field.
func EducationLevelGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEducationLevel, v))
}

// EducationLevelLT applies the LT predicate on the "education_level" field.
func EducationLevelLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEducationLevel, v))
}

// EducationLevelLTE applies the LTE predicate on the "education_level" field.
func EducationLevelLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEducationLevel, v))
}

// EducationLevelContains applies the Contains predicate on the "education_level" field.
func EducationLevelContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEducationLevel, v))
}

// EducationLevelHasPrefix applies the HasPrefix predicate on the "education_level" field.
func EducationLevelHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEducationLevel, v))
}

// EducationLevelHasSuffix applies the HasSuffix predicate on the "education_level" field.
func EducationLevelHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEducationLevel, v))
}

// EducationLevelEqualFold applies the EqualFold predicate on the "education_level" field.
func EducationLevelEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEducationLevel, v))
}

// EducationLevelContainsFold applies the ContainsFold predicate on the "education_level" field.
func EducationLevelContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEducationLevel, v))
}

// SubjectsIsNil applies the IsNil predicate on the "subjects" field.
func SubjectsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSubjects))
}

// SubjectsNotNil applies the NotNil predicate on the "subjects" field.
func SubjectsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSubjects))
}

// StudyStyleEQ applies the EQ predicate on the "study_style" field.
func StudyStyleEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStudyStyle, v))
}

// StudyStyleNEQ applies the NEQ predicate on the "study_style" field.
func StudyStyleNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStudyStyle, v))
}

// StudyStyleIn applies the In predicate on the "study_style" field.
func StudyStyleIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldStudyStyle, vs...))
}

// StudyStyleNotIn applies the NotIn predicate on the "study_style" field.
func StudyStyleNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStudyStyle, vs...))
}

// StudyStyleGT applies the GT predicate on the "study_style" field.
func StudyStyleGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldStudyStyle, v))
}

// StudyStyleGTE applies the GTE predicate on the "study_style" field.
func StudyStyleGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldStudyStyle, v))
}

// StudyStyleLT applies the LT predicate on the "study_style" field.
func StudyStyleLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldStudyStyle, v))
}

// StudyStyleLTE applies the LTE predicate on the "study_style" field.
func StudyStyleLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldStudyStyle, v))
}

// StudyStyleContains applies the Contains predicate on the "study_style" field.
func StudyStyleContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldStudyStyle, v))
}

// StudyStyleHasPrefix applies the HasPrefix predicate on the "study_style" field.
func StudyStyleHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldStudyStyle, v))
}

// StudyStyleHasSuffix applies the HasSuffix predicate on the "study_style" field.
func StudyStyleHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldStudyStyle, v))
}

// StudyStyleEqualFold applies the EqualFold predicate on the "study_style" field.
func StudyStyleEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldStudyStyle, v))
}

// StudyStyleContainsFold applies the ContainsFold predicate on the "study_style" field.
func StudyStyleContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldStudyStyle, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}

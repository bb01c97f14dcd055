package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User is the profile row backing a registered student. The identity
// itself (password, sessions) lives in the external auth subsystem;
// this row holds the study preferences shown on the dashboard.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable().
			Comment("Matches the auth subsystem's user id"),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("name").
			Default(""),
		field.String("timezone").
			Default(""),
		field.JSON("days_of_week", []string{}).
			Optional().
			Comment("Preferred study days, ordered"),
		field.JSON("study_times", []string{}).
			Optional().
			Comment("Preferred time slots: morning, afternoon, evening, night"),
		field.String("education_level").
			Default(""),
		field.JSON("subjects", []string{}).
			Optional(),
		field.String("study_style").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Todo is a task owned by a user, or shared with a group when group_id
// is set.
type Todo struct {
	ent.Schema
}

func (Todo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("title").
			NotEmpty().
			MaxLen(200),
		field.String("description").
			Optional().
			Nillable().
			MaxLen(1000),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.String("status").
			Default("pending").
			Comment("pending, in_progress, completed"),
		field.String("type").
			Default("personal").
			Comment("personal or group"),
		field.String("priority").
			Optional().
			Nillable().
			Comment("low, medium, high"),
		field.String("group_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Todo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("group_id"),
		index.Fields("status"),
	}
}

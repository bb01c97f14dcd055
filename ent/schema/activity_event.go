package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent is one row of a user's recent-activity feed. Rows are
// append-only; they are rendered, never mutated.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("todo_created, todo_completed, todo_updated, todo_deleted, other"),
		field.String("todo_title").
			Default(""),
		field.String("message").
			Default("").
			Comment("Fallback text for kinds without a dedicated template"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("kind"),
	}
}

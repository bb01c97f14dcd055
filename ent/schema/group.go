package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Group is a study group. Membership is a flat id list; max_members is
// enforced by the store on join, not by the schema.
type Group struct {
	ent.Schema
}

func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("owner_id").
			NotEmpty(),
		field.String("name").
			NotEmpty().
			MaxLen(100),
		field.String("description").
			Optional().
			Nillable().
			MaxLen(500),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("is_public").
			Default(true),
		field.Int("max_members").
			Default(4),
		field.JSON("members", []string{}).
			Optional().
			Comment("User ids of current members, owner included"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("is_public"),
	}
}

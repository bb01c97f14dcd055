package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// QuizQuestionRow is the serialized form of a generated question.
type QuizQuestionRow struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Quiz persists a quiz generated from uploaded study material.
type Quiz struct {
	ent.Schema
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("material_title").
			NotEmpty(),
		field.JSON("questions", []QuizQuestionRow{}).
			Comment("Generated questions in display order"),
		field.String("model").
			Default("").
			Comment("Model that generated this quiz"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

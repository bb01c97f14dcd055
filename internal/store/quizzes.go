package store

import (
	"context"
	"fmt"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/ent/quiz"
)

type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Save(ctx context.Context, data QuizData) (*ent.Quiz, error) {
	q, err := r.client.Quiz.Create().
		SetUserID(data.UserID).
		SetMaterialTitle(data.MaterialTitle).
		SetModel(data.Model).
		SetQuestions(data.Questions).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save quiz: %w", err)
	}
	return q, nil
}

func (r *quizRepo) ByID(ctx context.Context, id string) (*ent.Quiz, error) {
	return r.client.Quiz.Get(ctx, id)
}

func (r *quizRepo) ListByUser(ctx context.Context, userID string) ([]*ent.Quiz, error) {
	return r.client.Quiz.Query().
		Where(quiz.UserID(userID)).
		Order(ent.Desc(quiz.FieldCreatedAt)).
		All(ctx)
}

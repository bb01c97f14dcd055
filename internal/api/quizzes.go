package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rgoyal/studyhall/ent/schema"
	"github.com/rgoyal/studyhall/internal/forms"
	"github.com/rgoyal/studyhall/internal/quizgen"
	"github.com/rgoyal/studyhall/internal/store"
)

// generateQuiz runs the material-to-quiz pipeline and persists the
// result. Generation failures surface to the client with the mapped
// status; nothing partial is ever stored.
func (s *server) generateQuiz(c echo.Context) error {
	var in forms.QuizGenerateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	ctx := c.Request().Context()
	quiz, err := s.opts.Generator.Generate(ctx, quizgen.Material{
		Title:   in.Title,
		Content: in.Content,
	})
	if err != nil {
		return err
	}

	rows := make([]schema.QuizQuestionRow, len(quiz.Questions))
	for i, q := range quiz.Questions {
		rows[i] = schema.QuizQuestionRow{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	saved, err := s.opts.Store.Quizzes().Save(ctx, store.QuizData{
		UserID:        userID(c),
		MaterialTitle: quiz.MaterialTitle,
		Model:         quiz.Model,
		Questions:     rows,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, saved)
}

func (s *server) listQuizzes(c echo.Context) error {
	quizzes, err := s.opts.Store.Quizzes().ListByUser(c.Request().Context(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quizzes)
}

func (s *server) getQuiz(c echo.Context) error {
	q, err := s.opts.Store.Quizzes().ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if q.UserID != userID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not your quiz")
	}
	return c.JSON(http.StatusOK, q)
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/rgoyal/studyhall/internal/activity"
	"github.com/rgoyal/studyhall/internal/forms"
	"github.com/rgoyal/studyhall/internal/store"
)

func (s *server) listTodos(c echo.Context) error {
	todos, err := s.opts.Store.Todos().ListByUser(c.Request().Context(), userID(c))
	if err != nil {
		return err
	}

	if status := c.QueryParam("status"); status != "" {
		filtered := todos[:0]
		for _, t := range todos {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		todos = filtered
	}
	return c.JSON(http.StatusOK, todos)
}

func (s *server) createTodo(c echo.Context) error {
	var in forms.TodoCreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	ctx := c.Request().Context()
	t, err := s.opts.Store.Todos().Create(ctx, userID(c), &in)
	if err != nil {
		return err
	}

	s.recordActivity(ctx, userID(c), activity.KindTodoCreated, t.Title)
	return c.JSON(http.StatusCreated, t)
}

func (s *server) updateTodo(c echo.Context) error {
	var in forms.TodoUpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "empty patch")
	}

	ctx := c.Request().Context()
	existing, err := s.opts.Store.Todos().ByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	if existing.UserID != userID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not your todo")
	}

	t, err := s.opts.Store.Todos().Update(ctx, existing.ID, &in)
	if err != nil {
		return err
	}

	kind := activity.KindTodoUpdated
	if in.Status.Set && in.Status.Valid &&
		in.Status.Value == forms.TodoStatusCompleted &&
		existing.Status != forms.TodoStatusCompleted {
		kind = activity.KindTodoCompleted
	}
	s.recordActivity(ctx, userID(c), kind, t.Title)

	return c.JSON(http.StatusOK, t)
}

func (s *server) deleteTodo(c echo.Context) error {
	ctx := c.Request().Context()
	existing, err := s.opts.Store.Todos().ByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	if existing.UserID != userID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not your todo")
	}

	if err := s.opts.Store.Todos().Delete(ctx, existing.ID); err != nil {
		return err
	}

	s.recordActivity(ctx, userID(c), activity.KindTodoDeleted, existing.Title)
	return c.NoContent(http.StatusNoContent)
}

// recordActivity appends a feed entry. The feed is best-effort; a
// failed write must not fail the request that caused it.
func (s *server) recordActivity(ctx context.Context, uid string, kind activity.Kind, todoTitle string) {
	err := s.opts.Store.Events().AppendActivity(ctx, store.ActivityEventData{
		UserID:    uid,
		Kind:      string(kind),
		TodoTitle: todoTitle,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record activity: %v\n", err)
	}
}

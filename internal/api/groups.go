package api

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/rgoyal/studyhall/internal/forms"
)

func (s *server) listGroups(c echo.Context) error {
	ctx := c.Request().Context()

	// ?mine=true narrows the listing to the caller's groups.
	if c.QueryParam("mine") == "true" {
		groups, err := s.opts.Store.Groups().ListByMember(ctx, userID(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, groups)
	}

	groups, err := s.opts.Store.Groups().ListPublic(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

func (s *server) createGroup(c echo.Context) error {
	var in forms.GroupCreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	g, err := s.opts.Store.Groups().Create(c.Request().Context(), userID(c), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, g)
}

func (s *server) getGroup(c echo.Context) error {
	g, err := s.opts.Store.Groups().ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

func (s *server) joinGroup(c echo.Context) error {
	g, err := s.opts.Store.Groups().Join(c.Request().Context(), c.Param("id"), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

// groupTodos lists a group's shared todos. Members only.
func (s *server) groupTodos(c echo.Context) error {
	ctx := c.Request().Context()

	g, err := s.opts.Store.Groups().ByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	if !slices.Contains(g.Members, userID(c)) {
		return echo.NewHTTPError(http.StatusForbidden, "not a group member")
	}

	todos, err := s.opts.Store.Todos().ListByGroup(ctx, g.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

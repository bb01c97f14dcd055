package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/rgoyal/studyhall/internal/forms"
)

// register creates an account with the auth service, then mirrors it
// as a profile row. If the profile insert fails, the auth account is
// rolled back so the two systems don't drift; a failed rollback is
// reported in the response, not raised, so it can't mask the original
// failure.
func (s *server) register(c echo.Context) error {
	var in forms.RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	ctx := c.Request().Context()

	authUser, err := s.opts.Auth.CreateUser(ctx, in.Email, in.Password)
	if err != nil {
		return fmt.Errorf("register with auth service: %w", err)
	}

	u, err := s.opts.Store.Users().Create(ctx, authUser.ID, in.Email, in.Name)
	if err != nil {
		// Compensate: the auth account exists but the profile doesn't.
		rollback := s.opts.Auth.RollbackUser(ctx, authUser.ID)
		if !rollback.Success {
			fmt.Fprintf(os.Stderr, "warning: rollback of auth user %s failed: %s\n",
				authUser.ID, rollback.Error)
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":    "registration could not be completed",
			"rollback": rollback,
		})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"id":    u.ID,
		"email": u.Email,
	})
}

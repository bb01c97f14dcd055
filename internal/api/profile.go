package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/internal/forms"
	"github.com/rgoyal/studyhall/internal/profile"
)

// profilePayload is the dashboard view of a user's profile.
type profilePayload struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	DisplayName    string   `json:"display_name"`
	Name           string   `json:"name"`
	Timezone       string   `json:"timezone"`
	DaysOfWeek     []string `json:"days_of_week"`
	StudyTimes     []string `json:"study_times"`
	EducationLevel string   `json:"education_level"`
	Subjects       []string `json:"subjects"`
	StudyStyle     string   `json:"study_style"`
	Complete       bool     `json:"complete"`
	Completion     int      `json:"completion_percentage"`
	EmptyFields    []string `json:"empty_fields"`
}

func toProfilePayload(u *ent.User) profilePayload {
	return profilePayload{
		ID:             u.ID,
		Email:          u.Email,
		DisplayName:    profile.DisplayName(u),
		Name:           u.Name,
		Timezone:       u.Timezone,
		DaysOfWeek:     u.DaysOfWeek,
		StudyTimes:     u.StudyTimes,
		EducationLevel: u.EducationLevel,
		Subjects:       u.Subjects,
		StudyStyle:     u.StudyStyle,
		Complete:       profile.IsComplete(u),
		Completion:     profile.CompletionPercentage(u),
		EmptyFields:    profile.EmptyFields(u),
	}
}

func (s *server) getProfile(c echo.Context) error {
	u, err := s.opts.Store.Users().ByID(c.Request().Context(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfilePayload(u))
}

func (s *server) updateProfile(c echo.Context) error {
	var in forms.ProfilePreferencesInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	u, err := s.opts.Store.Users().UpdatePreferences(c.Request().Context(), userID(c), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfilePayload(u))
}

// deleteAccount removes the caller's profile row, then deletes the
// auth account through the same compensating call registration uses.
// Like a registration rollback, an auth-side failure is reported in
// the response rather than raised: the profile is already gone.
func (s *server) deleteAccount(c echo.Context) error {
	ctx := c.Request().Context()
	uid := userID(c)

	if err := s.opts.Store.Users().Delete(ctx, uid); err != nil {
		return err
	}

	rollback := s.opts.Auth.RollbackUser(ctx, uid)
	if !rollback.Success {
		fmt.Fprintf(os.Stderr, "warning: auth delete of user %s failed: %s\n",
			uid, rollback.Error)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"deleted":     true,
		"auth_delete": rollback,
	})
}

package api

import "github.com/labstack/echo/v4"

// headerUserID carries the authenticated user's id, set by the
// fronting auth proxy after it verifies the session.
const headerUserID = "X-User-ID"

const ctxUserIDKey = "userID"

// requireUser rejects requests without an authenticated identity.
func requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(headerUserID)
		if id == "" {
			return errUnauthorized
		}
		c.Set(ctxUserIDKey, id)
		return next(c)
	}
}

// userID returns the authenticated user id for the request.
func userID(c echo.Context) string {
	id, _ := c.Get(ctxUserIDKey).(string)
	return id
}

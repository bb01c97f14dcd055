package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rgoyal/studyhall/internal/activity"
)

func (s *server) activityFeed(c echo.Context) error {
	events, err := s.opts.Store.Events().RecentActivity(
		c.Request().Context(), userID(c), s.feedLimit())
	if err != nil {
		return err
	}

	now := time.Now()
	feed := make([]activity.Activity, len(events))
	for i, ev := range events {
		feed[i] = activity.FromEvent(ev, now)
	}
	return c.JSON(http.StatusOK, feed)
}

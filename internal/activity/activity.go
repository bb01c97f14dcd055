// Package activity renders the recent-activity feed: stored events
// become human-readable lines with relative timestamps.
package activity

import (
	"fmt"
	"time"

	"github.com/rgoyal/studyhall/ent"
)

// Kind labels what a feed entry describes.
type Kind string

const (
	KindTodoCreated   Kind = "todo_created"
	KindTodoCompleted Kind = "todo_completed"
	KindTodoUpdated   Kind = "todo_updated"
	KindTodoDeleted   Kind = "todo_deleted"
	KindOther         Kind = "other"
)

// Activity is one rendered feed entry.
type Activity struct {
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// verbs maps todo kinds to their feed verb.
var verbs = map[Kind]string{
	KindTodoCreated:   "Created",
	KindTodoCompleted: "Completed",
	KindTodoUpdated:   "Updated",
	KindTodoDeleted:   "Deleted",
}

// FromEvent renders a stored event row relative to now.
func FromEvent(ev *ent.ActivityEvent, now time.Time) Activity {
	kind := Kind(ev.Kind)
	return Activity{
		Kind:      kind,
		Text:      formatText(kind, ev.TodoTitle, ev.Message, ev.Timestamp, now),
		Timestamp: ev.Timestamp,
	}
}

func formatText(kind Kind, todoTitle, message string, at, now time.Time) string {
	if verb, ok := verbs[kind]; ok {
		return fmt.Sprintf("%s todo %q %s", verb, todoTitle, relativeTime(at, now))
	}
	// Non-todo events carry pre-rendered text; pass it through
	// untouched. The timestamp field covers recency.
	return message
}

// relativeTime renders how long ago at happened, floored to the
// largest bucket that fits. A timestamp in the future reads as now.
func relativeTime(at, now time.Time) string {
	secs := int64(now.Sub(at).Seconds())
	if secs < 60 {
		return "just now"
	}

	switch {
	case secs < 3600:
		return plural(secs/60, "minute")
	case secs < 86400:
		return plural(secs/3600, "hour")
	case secs < 7*86400:
		return plural(secs/86400, "day")
	case secs < 28*86400:
		return plural(secs/(7*86400), "week")
	default:
		return plural(secs/86400/30, "month")
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

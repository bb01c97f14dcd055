package activity

import (
	"testing"
	"time"

	"github.com/rgoyal/studyhall/ent"
)

func TestRelativeTimeBuckets(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"boundary minute", 60 * time.Second, "1 minute ago"},
		{"ninety seconds floors", 90 * time.Second, "1 minute ago"},
		{"minutes", 45 * time.Minute, "45 minutes ago"},
		{"boundary hour", time.Hour, "1 hour ago"},
		{"hours", 5 * time.Hour, "5 hours ago"},
		{"boundary day", 24 * time.Hour, "1 day ago"},
		{"days", 2 * 24 * time.Hour, "2 days ago"},
		{"boundary week", 7 * 24 * time.Hour, "1 week ago"},
		{"weeks", 20 * 24 * time.Hour, "2 weeks ago"},
		// 28 days is past the week bucket but under a 30-day
		// month, so the floor yields zero.
		{"boundary month", 28 * 24 * time.Hour, "0 months ago"},
		{"months", 65 * 24 * time.Hour, "2 months ago"},
		{"future reads as now", -time.Minute, "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relativeTime(now.Add(-tt.ago), now)
			if got != tt.want {
				t.Errorf("relativeTime = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromEvent_TodoKinds(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		kind string
		ago  time.Duration
		want string
	}{
		{"todo_created", 90 * time.Second, `Created todo "Read Chapter 1" 1 minute ago`},
		{"todo_completed", 2 * 24 * time.Hour, `Completed todo "Read Chapter 1" 2 days ago`},
		{"todo_updated", 30 * time.Second, `Updated todo "Read Chapter 1" just now`},
		{"todo_deleted", 3 * time.Hour, `Deleted todo "Read Chapter 1" 3 hours ago`},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			ev := &ent.ActivityEvent{
				Kind:      tt.kind,
				TodoTitle: "Read Chapter 1",
				Timestamp: now.Add(-tt.ago),
			}
			a := FromEvent(ev, now)
			if a.Text != tt.want {
				t.Errorf("Text = %q, want %q", a.Text, tt.want)
			}
			if a.Kind != Kind(tt.kind) {
				t.Errorf("Kind = %q, want %q", a.Kind, tt.kind)
			}
		})
	}
}

func TestFromEvent_OtherKindMessageVerbatim(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	ev := &ent.ActivityEvent{
		Kind:      "other",
		Message:   `Joined group "Algebra Crew"`,
		Timestamp: now.Add(-10 * time.Minute),
	}
	a := FromEvent(ev, now)
	// The message is pre-rendered text and must come through without a
	// relative-time suffix.
	if want := `Joined group "Algebra Crew"`; a.Text != want {
		t.Errorf("Text = %q, want %q", a.Text, want)
	}
	if !a.Timestamp.Equal(ev.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", a.Timestamp, ev.Timestamp)
	}
}

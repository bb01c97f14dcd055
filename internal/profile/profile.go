// Package profile computes dashboard state from a user's stored
// preferences: which fields are still empty, how complete the profile
// is, and what name to greet the student with.
package profile

import (
	"math"
	"strings"

	"github.com/rgoyal/studyhall/ent"
)

// preferenceFields are the seven profile fields that count toward
// completion, in display order.
var preferenceFields = []string{
	"name",
	"timezone",
	"days_of_week",
	"study_times",
	"education_level",
	"subjects",
	"study_style",
}

// EmptyFields returns the names of preference fields the user has not
// filled in yet. Whitespace-only strings count as empty. A nil user
// reports every field empty.
func EmptyFields(u *ent.User) []string {
	if u == nil {
		return append([]string(nil), preferenceFields...)
	}

	var empty []string
	if strings.TrimSpace(u.Name) == "" {
		empty = append(empty, "name")
	}
	if strings.TrimSpace(u.Timezone) == "" {
		empty = append(empty, "timezone")
	}
	if len(u.DaysOfWeek) == 0 {
		empty = append(empty, "days_of_week")
	}
	if len(u.StudyTimes) == 0 {
		empty = append(empty, "study_times")
	}
	if strings.TrimSpace(u.EducationLevel) == "" {
		empty = append(empty, "education_level")
	}
	if len(u.Subjects) == 0 {
		empty = append(empty, "subjects")
	}
	if strings.TrimSpace(u.StudyStyle) == "" {
		empty = append(empty, "study_style")
	}
	return empty
}

// IsComplete reports whether every preference field is filled in.
func IsComplete(u *ent.User) bool {
	return len(EmptyFields(u)) == 0
}

// CompletionPercentage returns how much of the profile is filled in,
// rounded to the nearest whole percent.
func CompletionPercentage(u *ent.User) int {
	total := len(preferenceFields)
	filled := total - len(EmptyFields(u))
	return int(math.Round(100 * float64(filled) / float64(total)))
}

// DisplayName returns the name to greet the user with: the profile
// name, then the local part of the email, then a generic fallback.
func DisplayName(u *ent.User) string {
	if u != nil {
		if name := strings.TrimSpace(u.Name); name != "" {
			return name
		}
		if at := strings.IndexByte(u.Email, '@'); at > 0 {
			return u.Email[:at]
		}
	}
	return "Student"
}

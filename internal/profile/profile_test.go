package profile

import (
	"testing"

	"github.com/rgoyal/studyhall/ent"
)

func fullUser() *ent.User {
	return &ent.User{
		Email:          "priya@example.edu",
		Name:           "Priya",
		Timezone:       "Asia/Kolkata",
		DaysOfWeek:     []string{"monday", "wednesday"},
		StudyTimes:     []string{"evening"},
		EducationLevel: "undergraduate",
		Subjects:       []string{"biology"},
		StudyStyle:     "group",
	}
}

func TestEmptyFields_NilUser(t *testing.T) {
	got := EmptyFields(nil)
	if len(got) != 7 {
		t.Fatalf("EmptyFields(nil) = %d fields, want 7", len(got))
	}
}

func TestEmptyFields_FullProfile(t *testing.T) {
	if got := EmptyFields(fullUser()); len(got) != 0 {
		t.Fatalf("EmptyFields = %v, want none", got)
	}
	if !IsComplete(fullUser()) {
		t.Fatal("IsComplete = false, want true")
	}
}

func TestEmptyFields_WhitespaceCountsAsEmpty(t *testing.T) {
	u := fullUser()
	u.Timezone = "   "
	got := EmptyFields(u)
	if len(got) != 1 || got[0] != "timezone" {
		t.Fatalf("EmptyFields = %v, want [timezone]", got)
	}
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name  string
		empty int // fields to blank out
		want  int
	}{
		{"full", 0, 100},
		{"one empty", 1, 86},
		{"two empty", 2, 71},
		{"three empty", 3, 57},
		{"four empty", 4, 43},
		{"five empty", 5, 29},
		{"six empty", 6, 14},
		{"all empty", 7, 0},
	}

	blankers := []func(*ent.User){
		func(u *ent.User) { u.Name = "" },
		func(u *ent.User) { u.Timezone = "" },
		func(u *ent.User) { u.DaysOfWeek = nil },
		func(u *ent.User) { u.StudyTimes = nil },
		func(u *ent.User) { u.EducationLevel = "" },
		func(u *ent.User) { u.Subjects = nil },
		func(u *ent.User) { u.StudyStyle = "" },
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := fullUser()
			for i := 0; i < tt.empty; i++ {
				blankers[i](u)
			}
			if got := CompletionPercentage(u); got != tt.want {
				t.Errorf("CompletionPercentage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompletionPercentage_NilUser(t *testing.T) {
	if got := CompletionPercentage(nil); got != 0 {
		t.Errorf("CompletionPercentage(nil) = %d, want 0", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user *ent.User
		want string
	}{
		{"profile name", &ent.User{Name: "Priya", Email: "priya@example.edu"}, "Priya"},
		{"email local part", &ent.User{Email: "sam.lee@example.edu"}, "sam.lee"},
		{"whitespace name falls through", &ent.User{Name: "  ", Email: "sam@example.edu"}, "sam"},
		{"no usable email", &ent.User{Email: "@example.edu"}, "Student"},
		{"nil user", nil, "Student"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.user); got != tt.want {
				t.Errorf("DisplayName = %q, want %q", got, tt.want)
			}
		})
	}
}

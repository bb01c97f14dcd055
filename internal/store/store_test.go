package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/ent/schema"
	"github.com/rgoyal/studyhall/internal/forms"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()

	u, err := users.Create(ctx, "auth-1", "priya@example.edu", "Priya")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != "auth-1" {
		t.Errorf("id = %q, want auth-1", u.ID)
	}

	got, err := users.ByEmail(ctx, "priya@example.edu")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("by email id = %q, want %q", got.ID, u.ID)
	}

	if _, err := users.ByID(ctx, "missing"); !ent.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestUserUpdatePreferences_PartialReplace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()

	u, err := users.Create(ctx, "", "sam@example.edu", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Sam"
	u, err = users.UpdatePreferences(ctx, u.ID, &forms.ProfilePreferencesInput{
		Name:       &name,
		DaysOfWeek: []string{"monday", "wednesday"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Name != "Sam" {
		t.Errorf("name = %q, want Sam", u.Name)
	}

	// A later partial update must not clobber untouched fields.
	tz := "Asia/Kolkata"
	u, err = users.UpdatePreferences(ctx, u.ID, &forms.ProfilePreferencesInput{Timezone: &tz})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if u.Name != "Sam" {
		t.Errorf("name clobbered to %q", u.Name)
	}
	if len(u.DaysOfWeek) != 2 {
		t.Errorf("days_of_week = %v, want 2 entries", u.DaysOfWeek)
	}
	if u.Timezone != "Asia/Kolkata" {
		t.Errorf("timezone = %q", u.Timezone)
	}
}

func TestTodoCreateDefaultsAndUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	todos := s.Todos()

	created, err := todos.Create(ctx, "u1", &forms.TodoCreateInput{
		Title:  "Read Chapter 1",
		Status: forms.TodoStatusPending,
		Type:   forms.TodoTypePersonal,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Description != nil {
		t.Errorf("description = %v, want nil", created.Description)
	}

	// Patch: set status, null out a field that was never set, leave title.
	patch := &forms.TodoUpdateInput{
		Status:      forms.Some(forms.TodoStatusCompleted),
		Description: forms.Null[string](),
	}
	updated, err := todos.Update(ctx, created.ID, patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != forms.TodoStatusCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}
	if updated.Title != "Read Chapter 1" {
		t.Errorf("title = %q, want unchanged", updated.Title)
	}

	list, err := todos.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %d todos, want 1", len(list))
	}

	if err := todos.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := todos.ByID(ctx, created.ID); !ent.IsNotFound(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}

func TestGroupJoinRules(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	groups := s.Groups()

	cap := 4
	g, err := groups.Create(ctx, "owner", &forms.GroupCreateInput{
		Name:       "Algebra Crew",
		MaxMembers: &cap,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(g.Members) != 1 || g.Members[0] != "owner" {
		t.Fatalf("members = %v, want [owner]", g.Members)
	}

	// Owner can't join twice.
	if _, err := groups.Join(ctx, g.ID, "owner"); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("join owner: %v, want ErrAlreadyMember", err)
	}

	// Fill to capacity.
	for i := 1; i < cap; i++ {
		if _, err := groups.Join(ctx, g.ID, fmt.Sprintf("u%d", i)); err != nil {
			t.Fatalf("join u%d: %v", i, err)
		}
	}
	if _, err := groups.Join(ctx, g.ID, "late"); !errors.Is(err, ErrGroupFull) {
		t.Errorf("join full group: %v, want ErrGroupFull", err)
	}

	mine, err := groups.ListByMember(ctx, "u1")
	if err != nil {
		t.Fatalf("list by member: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("list by member = %d groups, want 1", len(mine))
	}
}

func TestGroupJoinConcurrent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	groups := s.Groups()

	cap := 4
	g, err := groups.Create(ctx, "owner", &forms.GroupCreateInput{
		Name:       "Finals Sprint",
		MaxMembers: &cap,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Twice as many joiners as open seats, racing. The capacity check
	// must hold even when joins overlap.
	var wg sync.WaitGroup
	errs := make([]error, 2*(cap-1))
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = groups.Join(ctx, g.ID, fmt.Sprintf("u%d", i))
		}(i)
	}
	wg.Wait()

	var joined, full int
	for _, err := range errs {
		switch {
		case err == nil:
			joined++
		case errors.Is(err, ErrGroupFull):
			full++
		default:
			t.Errorf("join: %v", err)
		}
	}
	if joined != cap-1 || full != cap-1 {
		t.Errorf("joined = %d, full = %d, want %d each", joined, full, cap-1)
	}

	final, err := groups.ByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if len(final.Members) != cap {
		t.Errorf("members = %v, want exactly %d", final.Members, cap)
	}
}

func TestGroupJoinPrivate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	groups := s.Groups()

	private := false
	g, err := groups.Create(ctx, "owner", &forms.GroupCreateInput{
		Name:     "Closed Circle",
		IsPublic: &private,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := groups.Join(ctx, g.ID, "outsider"); !errors.Is(err, ErrPrivateGroup) {
		t.Errorf("join private group: %v, want ErrPrivateGroup", err)
	}

	public, err := groups.ListPublic(ctx)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 0 {
		t.Errorf("list public = %d groups, want 0", len(public))
	}
}

func TestQuizSaveAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	quizzes := s.Quizzes()

	_, err := quizzes.Save(ctx, QuizData{
		UserID:        "u1",
		MaterialTitle: "Photosynthesis Notes",
		Model:         "gemini-flash",
		Questions: []schema.QuizQuestionRow{
			{
				Question:      "What pigment absorbs light?",
				Options:       []string{"Chlorophyll", "Keratin", "Hemoglobin", "Melanin"},
				CorrectAnswer: "Chlorophyll",
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	list, err := quizzes.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %d quizzes, want 1", len(list))
	}
	if got := list[0].Questions[0].CorrectAnswer; got != "Chlorophyll" {
		t.Errorf("correct_answer = %q", got)
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	err := events.AppendActivity(ctx, ActivityEventData{
		UserID: "u1", Kind: "todo_created", TodoTitle: "Read Chapter 1",
	})
	if err != nil {
		t.Fatalf("append activity: %v", err)
	}

	err = events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-model", Purpose: "quiz-gen", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	err = events.AppendActivity(ctx, ActivityEventData{
		UserID: "u1", Kind: "todo_completed", TodoTitle: "Read Chapter 1",
	})
	if err != nil {
		t.Fatalf("append activity 2: %v", err)
	}

	feed, err := events.RecentActivity(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("feed = %d entries, want 2", len(feed))
	}
	// Newest first, and sequences reflect the interleaved LLM event.
	if feed[0].Kind != "todo_completed" {
		t.Errorf("feed[0].kind = %q, want todo_completed", feed[0].Kind)
	}
	if feed[0].Sequence != 3 || feed[1].Sequence != 1 {
		t.Errorf("sequences = %d, %d, want 3, 1", feed[0].Sequence, feed[1].Sequence)
	}

	llmEvents, err := events.QueryLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	if len(llmEvents) != 1 || llmEvents[0].Sequence != 2 {
		t.Fatalf("llm events = %+v, want one with sequence 2", llmEvents)
	}
}

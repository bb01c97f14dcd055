package forms

import (
	"encoding/json"
	"errors"
	"testing"
)

func mustValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return ve
}

func TestTodoCreate_Valid(t *testing.T) {
	in := TodoCreateInput{Title: "Study", Status: TodoStatusPending, Type: TodoTypePersonal}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestTodoCreate_EmptyTitle(t *testing.T) {
	in := TodoCreateInput{Title: "", Status: TodoStatusPending, Type: TodoTypePersonal}
	ve := mustValidationError(t, in.Validate())
	if _, ok := ve.FieldMap()["title"]; !ok {
		t.Fatalf("expected error on title, got %v", ve.FieldMap())
	}
}

func TestTodoCreate_CollectsAllFields(t *testing.T) {
	bad := "urgent"
	in := TodoCreateInput{Title: "", Status: "done", Type: TodoTypePersonal, Priority: &bad}
	ve := mustValidationError(t, in.Validate())
	m := ve.FieldMap()
	for _, f := range []string{"title", "status", "priority"} {
		if _, ok := m[f]; !ok {
			t.Errorf("expected error on %q, got %v", f, m)
		}
	}
}

func TestTodoUpdate_ThreeStateFields(t *testing.T) {
	var in TodoUpdateInput
	payload := `{"title":"Read Chapter 1","description":null,"priority":"high"}`
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !in.Title.Set || !in.Title.Valid || in.Title.Value != "Read Chapter 1" {
		t.Errorf("title = %+v, want set value", in.Title)
	}
	if !in.Description.Set || in.Description.Valid {
		t.Errorf("description = %+v, want explicit null", in.Description)
	}
	if in.Status.Set {
		t.Errorf("status = %+v, want absent", in.Status)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestTodoUpdate_NullTitleRejected(t *testing.T) {
	var in TodoUpdateInput
	if err := json.Unmarshal([]byte(`{"title":null}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ve := mustValidationError(t, in.Validate())
	if _, ok := ve.FieldMap()["title"]; !ok {
		t.Fatalf("expected error on title, got %v", ve.FieldMap())
	}
}

func TestTodoUpdate_Empty(t *testing.T) {
	var in TodoUpdateInput
	if err := json.Unmarshal([]byte(`{}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !in.Empty() {
		t.Fatal("Empty() = false, want true")
	}
}

func TestGroupCreate_ShortName(t *testing.T) {
	in := GroupCreateInput{Name: "AB"}
	ve := mustValidationError(t, in.Validate())
	if _, ok := ve.FieldMap()["name"]; !ok {
		t.Fatalf("expected error on name, got %v", ve.FieldMap())
	}
}

func TestGroupCreate_SmallCapacity(t *testing.T) {
	two := 2
	in := GroupCreateInput{Name: "Algebra Crew", MaxMembers: &two}
	ve := mustValidationError(t, in.Validate())
	if _, ok := ve.FieldMap()["max_members"]; !ok {
		t.Fatalf("expected error on max_members, got %v", ve.FieldMap())
	}
}

func TestGroupCreate_Defaults(t *testing.T) {
	in := GroupCreateInput{Name: "Algebra Crew"}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if !in.Public() {
		t.Error("Public() = false, want true by default")
	}
	if got := in.Capacity(); got != GroupDefaultMembers {
		t.Errorf("Capacity() = %d, want %d", got, GroupDefaultMembers)
	}
	if got := in.TagList(); got == nil || len(got) != 0 {
		t.Errorf("TagList() = %v, want empty non-nil slice", got)
	}
}

func TestGroupCreate_LongDescription(t *testing.T) {
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	in := GroupCreateInput{Name: "Algebra Crew", Description: Some(string(long))}
	ve := mustValidationError(t, in.Validate())
	if _, ok := ve.FieldMap()["description"]; !ok {
		t.Fatalf("expected error on description, got %v", ve.FieldMap())
	}
}

func TestProfilePreferences_Partial(t *testing.T) {
	name := "Priya"
	in := ProfilePreferencesInput{Name: &name}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestProfilePreferences_ShortName(t *testing.T) {
	name := "P"
	in := ProfilePreferencesInput{Name: &name}
	ve := mustValidationError(t, in.Validate())
	if _, ok := ve.FieldMap()["name"]; !ok {
		t.Fatalf("expected error on name, got %v", ve.FieldMap())
	}
}

func TestProfilePreferences_BadDay(t *testing.T) {
	in := ProfilePreferencesInput{DaysOfWeek: []string{"monday", "funday"}}
	if err := in.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for unknown day")
	}
}

func TestRegister_RequiresEmailAndPassword(t *testing.T) {
	in := RegisterInput{Email: "not-an-email", Password: "short"}
	ve := mustValidationError(t, in.Validate())
	m := ve.FieldMap()
	for _, f := range []string{"email", "password"} {
		if _, ok := m[f]; !ok {
			t.Errorf("expected error on %q, got %v", f, m)
		}
	}
}

func TestOptional_MarshalRoundTrip(t *testing.T) {
	type wrapper struct {
		V Optional[int] `json:"v"`
	}
	var w wrapper
	if err := json.Unmarshal([]byte(`{"v":42}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"v":42}` {
		t.Errorf("marshal = %s, want {\"v\":42}", out)
	}
}

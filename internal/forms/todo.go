package forms

import "time"

// Todo enum values. These are the wire values stored and exchanged, so
// they live with the payload contracts.
const (
	TodoStatusPending    = "pending"
	TodoStatusInProgress = "in_progress"
	TodoStatusCompleted  = "completed"

	TodoTypePersonal = "personal"
	TodoTypeGroup    = "group"

	TodoPriorityLow    = "low"
	TodoPriorityMedium = "medium"
	TodoPriorityHigh   = "high"
)

// TodoCreateInput is the payload for creating a todo.
type TodoCreateInput struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description" validate:"omitnil,max=1000"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status" validate:"required,oneof=pending in_progress completed"`
	Type        string     `json:"type" validate:"required,oneof=personal group"`
	Priority    *string    `json:"priority" validate:"omitnil,oneof=low medium high"`
	GroupID     *string    `json:"group_id"`
}

// Validate checks the payload and reports every violated field.
func (in *TodoCreateInput) Validate() error {
	return runValidate(in).orNil()
}

// TodoUpdateInput is the payload for a partial todo update. Every field
// is optional: an absent field leaves the stored value unchanged, an
// explicit null clears it (only where the field is nullable).
type TodoUpdateInput struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	DueDate     Optional[time.Time] `json:"due_date"`
	Status      Optional[string]    `json:"status"`
	Type        Optional[string]    `json:"type"`
	Priority    Optional[string]    `json:"priority"`
	GroupID     Optional[string]    `json:"group_id"`
}

// Validate checks every provided field. Optional fields cannot be
// expressed with struct tags, so the checks are explicit; they still
// report all violations together.
func (in *TodoUpdateInput) Validate() error {
	var ve ValidationError

	if in.Title.Set {
		switch {
		case !in.Title.Valid:
			ve.Fields = append(ve.Fields, FieldError{Field: "title", Error: "title cannot be cleared"})
		case len(in.Title.Value) < 1 || len(in.Title.Value) > 200:
			ve.Fields = append(ve.Fields, FieldError{Field: "title", Error: "title must be 1 to 200 characters"})
		}
	}

	if in.Description.Set && in.Description.Valid && len(in.Description.Value) > 1000 {
		ve.Fields = append(ve.Fields, FieldError{Field: "description", Error: "description must be at most 1000 characters"})
	}

	if in.Status.Set {
		if !in.Status.Valid || !oneOf(in.Status.Value, TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted) {
			ve.Fields = append(ve.Fields, FieldError{Field: "status", Error: "status must be one of pending, in_progress, completed"})
		}
	}

	if in.Type.Set {
		if !in.Type.Valid || !oneOf(in.Type.Value, TodoTypePersonal, TodoTypeGroup) {
			ve.Fields = append(ve.Fields, FieldError{Field: "type", Error: "type must be one of personal, group"})
		}
	}

	if in.Priority.Set && in.Priority.Valid && !oneOf(in.Priority.Value, TodoPriorityLow, TodoPriorityMedium, TodoPriorityHigh) {
		ve.Fields = append(ve.Fields, FieldError{Field: "priority", Error: "priority must be one of low, medium, high"})
	}

	return ve.orNil()
}

// Empty reports whether the patch touches nothing.
func (in *TodoUpdateInput) Empty() bool {
	return !in.Title.Set && !in.Description.Set && !in.DueDate.Set &&
		!in.Status.Set && !in.Type.Set && !in.Priority.Set && !in.GroupID.Set
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

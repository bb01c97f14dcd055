package forms

// Group size bounds. Four seats is the default because most study
// groups are formed from a single table of students.
const (
	GroupMinMembers     = 4
	GroupMaxMembers     = 100
	GroupDefaultMembers = 4
)

// GroupCreateInput is the payload for creating a study group.
type GroupCreateInput struct {
	Name        string           `json:"name" validate:"required,min=3,max=100"`
	Description Optional[string] `json:"description"`
	Tags        []string         `json:"tags" validate:"omitnil,max=10,dive,min=1,max=30"`
	IsPublic    *bool            `json:"is_public"`
	MaxMembers  *int             `json:"max_members" validate:"omitnil,gte=4,lte=100"`
}

// Validate checks the payload and reports every violated field.
func (in *GroupCreateInput) Validate() error {
	ve := runValidate(in)
	if ve == nil {
		ve = &ValidationError{}
	}
	if in.Description.Set && in.Description.Valid && len(in.Description.Value) > 500 {
		ve.Fields = append(ve.Fields, FieldError{Field: "description", Error: "description must be at most 500 characters"})
	}
	return ve.orNil()
}

// Public returns the visibility flag, defaulting to public.
func (in *GroupCreateInput) Public() bool {
	if in.IsPublic == nil {
		return true
	}
	return *in.IsPublic
}

// Capacity returns the member limit, defaulting when absent.
func (in *GroupCreateInput) Capacity() int {
	if in.MaxMembers == nil {
		return GroupDefaultMembers
	}
	return *in.MaxMembers
}

// TagList returns the tags, never nil.
func (in *GroupCreateInput) TagList() []string {
	if in.Tags == nil {
		return []string{}
	}
	return in.Tags
}

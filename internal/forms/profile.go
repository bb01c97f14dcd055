package forms

// ProfilePreferencesInput is the payload for updating study
// preferences. Every field is optional; provided fields replace the
// stored values wholesale.
type ProfilePreferencesInput struct {
	Name           *string  `json:"name" validate:"omitnil,min=2,max=100"`
	Timezone       *string  `json:"timezone" validate:"omitnil,min=1,max=64"`
	EducationLevel *string  `json:"education_level" validate:"omitnil,min=1,max=100"`
	StudyStyle     *string  `json:"study_style" validate:"omitnil,min=1,max=100"`
	DaysOfWeek     []string `json:"days_of_week" validate:"omitnil,min=1,max=7,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StudyTimes     []string `json:"study_times" validate:"omitnil,min=1,dive,min=1,max=30"`
	Subjects       []string `json:"subjects" validate:"omitnil,min=1,dive,min=1,max=60"`
}

// Validate checks the payload and reports every violated field.
func (in *ProfilePreferencesInput) Validate() error {
	return runValidate(in).orNil()
}

// Empty reports whether the payload touches nothing.
func (in *ProfilePreferencesInput) Empty() bool {
	return in.Name == nil && in.Timezone == nil && in.EducationLevel == nil &&
		in.StudyStyle == nil && in.DaysOfWeek == nil && in.StudyTimes == nil &&
		in.Subjects == nil
}

// RegisterInput is the payload for account registration.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name" validate:"omitempty,min=2,max=100"`
}

// Validate checks the payload and reports every violated field.
func (in *RegisterInput) Validate() error {
	return runValidate(in).orNil()
}

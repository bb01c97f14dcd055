package forms

// QuizGenerateInput is the payload for generating a quiz from study
// material.
type QuizGenerateInput struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=20"`
}

// Validate checks the payload and reports every violated field.
func (in *QuizGenerateInput) Validate() error {
	return runValidate(in).orNil()
}

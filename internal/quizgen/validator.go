package quizgen

import "fmt"

// Validator checks a parsed quiz for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g.
	// "structural".
	Name() string

	// Validate checks the quiz and returns nil if it passes.
	Validate(q *Quiz) *ValidationError
}

// StructuralValidator enforces the shape the prompt requests but the
// model is free to ignore: exactly 4 options per question and a
// correct answer that is one of them, matched exactly.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Quiz) *ValidationError {
	if len(q.Questions) == 0 {
		return &ValidationError{Validator: v.Name(), Message: "quiz has no questions"}
	}

	for i, question := range q.Questions {
		if question.Question == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d has empty text", i+1),
			}
		}
		if len(question.Options) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d has %d options, want 4", i+1, len(question.Options)),
			}
		}
		if !containsExact(question.Options, question.CorrectAnswer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d correct_answer does not match any option", i+1),
			}
		}
	}
	return nil
}

// containsExact is a case- and whitespace-sensitive membership check.
func containsExact(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}

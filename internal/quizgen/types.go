package quizgen

import "context"

// Material is the study material a quiz is generated from.
type Material struct {
	// Title names the material, e.g. "Photosynthesis Notes". Used in
	// the prompt and stored with the quiz.
	Title string

	// Content is the raw study text the questions must come from.
	Content string
}

// QuizQuestion is a single generated multiple-choice question.
type QuizQuestion struct {
	// Question is the prompt shown to the student.
	Question string `json:"question"`

	// Options holds exactly 4 answer choices in display order.
	Options []string `json:"options"`

	// CorrectAnswer matches one entry of Options exactly, including
	// case and whitespace.
	CorrectAnswer string `json:"correct_answer"`
}

// Quiz is a validated generation result ready for persistence.
type Quiz struct {
	MaterialTitle string
	Model         string
	Questions     []QuizQuestion
}

// Generator produces quizzes from study material.
type Generator interface {
	// Generate produces a quiz for the given material. All configured
	// validators are run before returning.
	Generate(ctx context.Context, material Material) (*Quiz, error)
}

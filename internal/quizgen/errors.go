package quizgen

import "fmt"

// ParseError means the model's text was not valid JSON after
// fence-stripping. Raw carries the original text for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("quiz response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError means the JSON parsed but lacks the required shape.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("quiz response has wrong shape: %s", e.Reason)
}

// ValidationError describes why a parsed quiz failed a content check.
type ValidationError struct {
	Validator string // which check failed
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

package forms

import "strings"

// FieldError reports an error on a specific payload field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError aggregates every violated field of a payload so
// callers can surface all of them at once, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid payload"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Error
	}
	return strings.Join(parts, "; ")
}

// FieldMap returns errors keyed by field name, for JSON responses.
func (e *ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Error
	}
	return m
}

// orNil returns the error as a plain error, or nil when no field failed.
// Returning a typed nil pointer through an error interface is a classic
// footgun; this keeps it in one place.
func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

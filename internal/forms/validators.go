package forms

import (
	"reflect"
	"strings"

	locale_en "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// Validate is the shared validator instance. Safe for concurrent use.
	Validate *validator.Validate

	// Translator renders field errors as human-readable text.
	Translator ut.Translator
)

func init() {
	en := locale_en.New()
	uni := ut.New(en, en)
	Translator, _ = uni.GetTranslator("en")

	Validate = validator.New(validator.WithRequiredStructEnabled())
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names in errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// runValidate runs struct-tag validation and converts the result into a
// *ValidationError listing every violated field. Returns nil when the
// payload is valid.
func runValidate(v any) *ValidationError {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "", Error: err.Error()}}}
	}

	fields := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Error: fe.Translate(Translator),
		})
	}
	return &ValidationError{Fields: fields}
}

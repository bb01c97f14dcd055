package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/internal/forms"
	"github.com/rgoyal/studyhall/internal/llm"
	"github.com/rgoyal/studyhall/internal/quizgen"
	"github.com/rgoyal/studyhall/internal/store"
)

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")

// appHTTPErrorHandler maps domain errors onto HTTP responses.
// Validation failures return the full field map, never only the first
// violation.
func appHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code    int
		message any
	)

	var (
		httpErr   *echo.HTTPError
		formErr   *forms.ValidationError
		vErrs     validator.ValidationErrors
		parseErr  *quizgen.ParseError
		schemErr  *quizgen.SchemaError
		quizErr   *quizgen.ValidationError
		rateErr   *llm.ErrRateLimit
		emptyErr  *llm.ErrEmptyCompletion
		availErr  *llm.ErrProviderUnavailable
		tokensErr *llm.ErrMaxTokensExceeded
	)

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message

	case errors.As(err, &formErr):
		code = http.StatusBadRequest
		message = formErr.FieldMap()

	case errors.As(err, &vErrs):
		fldErrs := make(map[string]string, len(vErrs))
		for _, vErr := range vErrs {
			fldErrs[vErr.Field()] = vErr.Translate(forms.Translator)
		}
		code = http.StatusBadRequest
		message = fldErrs

	case ent.IsNotFound(err):
		code = http.StatusNotFound
		message = "not found"

	case errors.Is(err, store.ErrGroupFull):
		code = http.StatusConflict
		message = store.ErrGroupFull.Error()

	case errors.Is(err, store.ErrAlreadyMember):
		code = http.StatusConflict
		message = store.ErrAlreadyMember.Error()

	case errors.Is(err, store.ErrPrivateGroup):
		code = http.StatusForbidden
		message = store.ErrPrivateGroup.Error()

	case errors.As(err, &parseErr), errors.As(err, &schemErr), errors.As(err, &quizErr),
		errors.As(err, &emptyErr), errors.As(err, &availErr), errors.As(err, &tokensErr):
		// The model produced something unusable; the client can retry.
		code = http.StatusBadGateway
		message = err.Error()

	case errors.As(err, &rateErr):
		code = http.StatusTooManyRequests
		message = err.Error()

	default:
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]any{"error": message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

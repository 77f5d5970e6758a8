package utils

import (
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"artmarket-backend/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeAndValidate decodes a JSON body into dst and runs its validate tags.
func DecodeAndValidate(r *http.Request, dst any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("Invalid request body").WithCause(err)
	}
	return Validate(dst)
}

// Validate runs struct validation and converts failures into an apperr
// validation error with one detail per field.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("Validation failed").WithCause(err)
	}
	details := make([]apperr.FieldError, 0, len(errs))
	for _, fe := range errs {
		details = append(details, apperr.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return apperr.Validation("Validation failed", details...)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "eqfield":
		return fmt.Sprintf("must match %s", fe.Param())
	}
	return "is invalid"
}

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("trimmed_min", trimmedMin); err != nil {
		panic(err)
	}
	return v
}

// trimmedMin checks the rune length of a string after trimming whitespace.
func trimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

// ValidationError describes the first rejected field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "jobDescription":
		if fe.Tag() == "trimmed_min" {
			if s, _ := fe.Value().(string); strings.TrimSpace(s) == "" {
				return "please enter a job description"
			}
			return fmt.Sprintf("job description must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("job description must be at most %s characters", fe.Param())
	case "userSkills":
		return fmt.Sprintf("skills must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

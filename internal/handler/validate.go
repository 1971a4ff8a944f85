package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/forgo/jobly/internal/model"
)

// Validator checks decoded request bodies against their `validate` tags
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON name
// and knows the custom "equity" rule.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("equity", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(model.Equity)
		return ok && e.Valid()
	})

	return &Validator{v: v}
}

// Struct validates s and returns the failures as field errors.
// A nil slice means s is valid.
func (v *Validator) Struct(s any) []model.FieldError {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []model.FieldError{{Field: "body", Message: err.Error()}}
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, model.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "equity":
		return "must be a decimal between 0 and 1"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

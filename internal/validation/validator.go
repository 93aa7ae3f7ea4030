// Package validation checks RPC inputs before they reach the services.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

// Error lists every invalid field of one input.
type Error struct {
	Fields []models.FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// checker is implemented by inputs carrying rules that struct tags cannot
// express, such as three-state patch fields.
type checker interface {
	Check() []models.FieldError
}

// Validator satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate runs the struct tags of i and then its Check method, if any.
func (v *Validator) Validate(i interface{}) error {
	var fields []models.FieldError

	if err := v.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, models.FieldError{Field: fe.Field(), Message: message(fe)})
		}
	}

	if c, ok := i.(checker); ok {
		fields = append(fields, c.Check()...)
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return fmt.Sprintf("must be at least %s long", fe.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

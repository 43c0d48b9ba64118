package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator enforces the `validate` tags of the request models.
type StructValidator struct {
	v *validator.Validate
}

// NewStructValidator builds a validator that reports fields by their JSON
// names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "":
			return fld.Name
		case "-":
			return ""
		}
		return name
	})

	return &StructValidator{v: v}
}

// Validate checks value against its tags. When fields are given only those
// struct fields (Go names) are checked.
func (s *StructValidator) Validate(ctx context.Context, value any, fields ...string) error {
	if value == nil {
		return ErrUnsupportedType
	}

	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) > 0 {
		err = s.v.StructPartialCtx(ctx, value, fields...)
	} else {
		err = s.v.StructCtx(ctx, value)
	}
	if err != nil {
		return formatError(err)
	}

	return nil
}

// formatError flattens validator.ValidationErrors into a single readable
// message wrapped around ErrInvalidInput.
func formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	parts := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		parts = append(parts, e.Field()+" "+friendlyMessage(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return "must not exceed " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}

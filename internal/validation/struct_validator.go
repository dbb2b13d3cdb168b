package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/middleearth/internal/domain"
)

// StructValidator wraps the go-playground validator with the game's custom tags
type StructValidator struct {
	validate *validator.Validate
}

var (
	structValidator     *StructValidator
	structValidatorOnce sync.Once
)

// NewStructValidator creates a validator with the "region" tag registered.
// Field names in errors follow the json, yaml or env tag so they match what the user wrote.
func NewStructValidator() *StructValidator {
	v := validator.New()
	_ = v.RegisterValidation("region", validateRegion)
	v.RegisterTagNameFunc(contentFieldName)
	return &StructValidator{validate: v}
}

func contentFieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "yaml", "env"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// Structs returns the shared struct validator
func Structs() *StructValidator {
	structValidatorOnce.Do(func() {
		structValidator = NewStructValidator()
	})
	return structValidator
}

// ValidateStruct validates a struct using tags.
// Failures are returned as one readable error listing every offending field.
func (v *StructValidator) ValidateStruct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func validateRegion(fl validator.FieldLevel) bool {
	_, err := domain.ParseRegion(fl.Field().String())
	return err == nil
}

// FormatValidationError flattens validator errors into "field: reason" pairs
func FormatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+": is required")
		case "region":
			msgs = append(msgs, fmt.Sprintf("%s: unknown region %q", field, e.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s]", field, e.Param()))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s: must be at least %s", field, e.Param()))
		case "max", "lte":
			msgs = append(msgs, fmt.Sprintf("%s: must be at most %s", field, e.Param()))
		case "gtefield":
			msgs = append(msgs, fmt.Sprintf("%s: must not be less than %s", field, strings.ToLower(e.Param())))
		default:
			msgs = append(msgs, field+": invalid value")
		}
	}
	sort.Strings(msgs)

	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(msgs, "; "))
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser/builtin"
	tperrors "github.com/ADVALAIN596/ToolPathViz/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML keys.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		known := make(map[string]struct{})
		for _, filter := range builtin.Filters() {
			known[filter] = struct{}{}
		}
		_ = v.RegisterValidation("filter", func(fl validator.FieldLevel) bool {
			_, ok := known[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks settings against their field rules.
func Validate(s *Settings) error {
	if s == nil {
		return tperrors.NewValidationError("settings", "settings are required", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		var msg string
		switch ve.Tag() {
		case "filter":
			msg = fmt.Sprintf("%s: unknown format %q", field, ve.Value())
		case "unique":
			msg = fmt.Sprintf("%s: formats must not repeat", field)
		default:
			msg = fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		}
		return tperrors.NewValidationError(field, msg, err)
	}
	return tperrors.NewValidationError("settings", err.Error(), err)
}

// fieldName drops the root struct name: "Settings.registry.formats[1]"
// becomes "registry.formats[1]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

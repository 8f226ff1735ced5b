package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/bloxi-go/bloxi/internal/errors"
	"github.com/bloxi-go/bloxi/pkg/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	bucketPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)
)

// validate returns the shared validator. Field names in errors are the
// json names used in the config file.
func validate() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("bucket", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || bucketPattern.MatchString(s)
		})

		validateInst = v
	})
	return validateInst
}

// convertValidationError turns validator errors into an E103 error naming
// the first offending field.
func convertValidationError(err error) *errors.Error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		e := errors.New("E103").
			WithDetail(fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())).
			Wrap(err)
		if hint := suggestionFor(fe); hint != "" {
			e = e.WithSuggestion(hint)
		}
		return e
	}
	return errors.New("E103").Wrap(err)
}

// validateBreakpointOrder checks that the default breakpoint table with the
// overrides applied still rises strictly from xs to 2xl.
func validateBreakpointOrder(overrides map[string]int) *errors.Error {
	if len(overrides) == 0 {
		return nil
	}
	var prev *style.Breakpoint
	for _, bp := range style.DefaultBreakpoints() {
		if bp.Name == style.Base {
			continue
		}
		if w, ok := overrides[bp.Name]; ok {
			bp.MinWidth = w
		}
		if prev != nil && bp.MinWidth <= prev.MinWidth {
			return errors.New("E103").
				WithDetail(fmt.Sprintf("breakpoints.%s (%dpx) must be wider than breakpoints.%s (%dpx)",
					bp.Name, bp.MinWidth, prev.Name, prev.MinWidth)).
				WithSuggestion("Breakpoint widths must increase in order: " + strings.Join(breakpointNames(), " < "))
		}
		prev = &bp
	}
	return nil
}

func breakpointNames() []string {
	var names []string
	for _, bp := range style.DefaultBreakpoints() {
		if bp.Name != style.Base {
			names = append(names, bp.Name)
		}
	}
	return names
}

// fieldPath drops the root struct name from the namespace:
// "Config.server.port" becomes "server.port".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func suggestionFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "Use one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "max":
		return fmt.Sprintf("Value must satisfy %s=%s", fe.Tag(), fe.Param())
	case "required", "required_if":
		return "Set " + fieldPath(fe)
	case "startswith":
		return "Value must start with " + fe.Param()
	}
	return ""
}

package router

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindParams populates a struct with values from the params map.
// The target must be a pointer to a struct with `param` tags.
func bindParams(params map[string]string, target any) error {
	if target == nil {
		return nil
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("target must be a pointer, got %s", v.Kind())
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to struct, got pointer to %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("param")
		if name == "" {
			continue
		}

		value, ok := params[name]
		if !ok {
			continue
		}

		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}

		if err := setField(fv, value); err != nil {
			return fmt.Errorf("parsing param %q: %w", name, err)
		}
	}

	return nil
}

// setField sets a field value from a string.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer: %s", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer: %s", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float: %s", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", value)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice element type: %s", field.Type().Elem().Kind())
		}
		// Wildcard captures: "a/b/c" -> ["a", "b", "c"]
		var parts []string
		if value != "" {
			parts = strings.Split(value, "/")
		}
		field.Set(reflect.ValueOf(parts))

	default:
		return fmt.Errorf("unsupported type: %s", field.Kind())
	}

	return nil
}

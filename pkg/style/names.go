package style

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// CSSName converts a camelCase style prop name to its CSS property name.
// Custom properties and names that are already kebab-case are unchanged.
//
//	CSSName("backgroundColor") // "background-color"
//	CSSName("WebkitTransform") // "-webkit-transform"
//	CSSName("--bx-mq-md-gap")  // "--bx-mq-md-gap"
func CSSName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	// msTransition is -ms-transition, the one lowercase vendor prefix.
	if len(name) > 2 && strings.HasPrefix(name, "ms") && name[2] >= 'A' && name[2] <= 'Z' {
		b.WriteByte('-')
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PropName converts a CSS property name to the camelCase prop name used in
// prop bags and custom-property names.
//
//	PropName("grid-template-columns") // "gridTemplateColumns"
func PropName(cssName string) string {
	if !strings.Contains(cssName, "-") {
		return cssName
	}
	var b strings.Builder
	b.Grow(len(cssName))
	upper := false
	for _, r := range cssName {
		if r == '-' {
			upper = b.Len() > 0
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

// formatValue renders a declaration value for inline CSS.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	if s, ok := formatNumber(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// formatNumber formats any Go numeric kind with the shortest representation.
func formatNumber(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// isNil reports whether v is absent: a nil interface, or a nil pointer, map,
// slice, func, chan or interface value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

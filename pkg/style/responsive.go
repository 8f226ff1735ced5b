package style

import "reflect"

// R is a responsive value: a map from breakpoint name to the value used at
// and above that breakpoint. It is the explicit form of a responsive prop;
// plain maps are only classified as responsive by key inspection.
//
//	style.R{"base": "column", "md": "row"}
type R map[string]any

// IsResponsiveMap reports whether v is a breakpoint map: a non-nil map with
// string keys, at least one of which names a breakpoint. Slices, scalars and
// maps without breakpoint keys are plain values.
func IsResponsiveMap(v any) bool {
	_, ok := breakpointEntries(v)
	return ok
}

// ResolveBase returns the single representative value of v. Plain values are
// returned unchanged. For a breakpoint map it returns the base entry if
// defined, otherwise the first defined entry in breakpoint order, otherwise
// fallback (or nil when no fallback is given).
func ResolveBase(v any, fallback ...any) any {
	var def any
	if len(fallback) > 0 {
		def = fallback[0]
	}
	if isNil(v) {
		return def
	}
	entries, ok := breakpointEntries(v)
	if !ok {
		return v
	}
	for _, bp := range breakpoints {
		if val, ok := entries[bp.Name]; ok && !isNil(val) {
			return val
		}
	}
	return def
}

// breakpointEntries extracts the breakpoint-keyed entries of a responsive
// map. Keys that are not breakpoints are dropped. ok is false when v is not
// a responsive map.
func breakpointEntries(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case R:
		return filterBreakpoints(m)
	case map[string]any:
		return filterBreakpoints(m)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	var entries map[string]any
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		if !IsBreakpoint(key) {
			continue
		}
		if entries == nil {
			entries = make(map[string]any, rv.Len())
		}
		entries[key] = iter.Value().Interface()
	}
	return entries, entries != nil
}

func filterBreakpoints(m map[string]any) (map[string]any, bool) {
	if m == nil {
		return nil, false
	}
	var entries map[string]any
	for key, val := range m {
		if !IsBreakpoint(key) {
			continue
		}
		if entries == nil {
			entries = make(map[string]any, len(m))
		}
		entries[key] = val
	}
	return entries, entries != nil
}

// Transform applies fn to a plain value, or to each defined breakpoint entry
// of a responsive map, returning an R. Unknown keys are dropped. A nil v
// stays nil.
func Transform(v any, fn func(any) any) any {
	if isNil(v) {
		return nil
	}
	entries, ok := breakpointEntries(v)
	if !ok {
		return fn(v)
	}
	out := make(R, len(entries))
	for _, bp := range breakpoints {
		if val, ok := entries[bp.Name]; ok && !isNil(val) {
			out[bp.Name] = fn(val)
		}
	}
	return out
}

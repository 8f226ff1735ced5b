package layout

import "github.com/bloxi-go/bloxi/pkg/style"

// alignments maps positional words onto flexbox alignment keywords.
var alignments = map[string]string{
	"left":   "flex-start",
	"top":    "flex-start",
	"center": "center",
	"middle": "center",
	"right":  "flex-end",
	"bottom": "flex-end",
}

// Align translates a positional alignment word into its flexbox keyword.
// Values outside the table, including non-strings, are returned unchanged.
// Responsive maps are translated per breakpoint.
func Align(v any) any {
	return style.Transform(v, func(x any) any {
		if s, ok := x.(string); ok {
			if mapped, ok := alignments[s]; ok {
				return mapped
			}
		}
		return x
	})
}

// firstSet returns the first non-nil, non-empty value.
func firstSet(values ...any) any {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}

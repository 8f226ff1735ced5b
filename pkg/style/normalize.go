package style

// unitless lists the props whose numeric values are not lengths.
var unitless = map[string]bool{
	"flex":          true,
	"flexGrow":      true,
	"flexShrink":    true,
	"opacity":       true,
	"zIndex":        true,
	"fontWeight":    true,
	"lineHeight":    true,
	"scale":         true,
	"order":         true,
	"columnCount":   true,
	"fillOpacity":   true,
	"strokeOpacity": true,
	"strokeWidth":   true,
}

// IsUnitless reports whether numeric values of name are written without a unit.
func IsUnitless(name string) bool {
	return unitless[name]
}

// Normalize converts a numeric value into a pixel length unless name is a
// unitless property. Non-numeric values are returned unchanged.
//
//	Normalize("width", 5)   // "5px"
//	Normalize("opacity", 5) // 5
func Normalize(name string, v any) any {
	if unitless[name] {
		return v
	}
	if s, ok := formatNumber(v); ok {
		return s + "px"
	}
	return v
}

package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Runtime Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Mount target not found",
		Detail:   "The document has no element with the requested container id. Render a root container before mounting.",
		DocURL:   "https://bloxi.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a node whose kind is not element, text, fragment, component or raw.",
		DocURL:   "https://bloxi.dev/docs/errors/E002",
	},

	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No bloxi.json or bloxi.yaml was found in the project directory or any parent directory.",
		DocURL:   "https://bloxi.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Config file could not be parsed",
		Detail:   "The config file is not valid JSON or YAML.",
		DocURL:   "https://bloxi.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "One or more config values failed validation.",
		DocURL:   "https://bloxi.dev/docs/errors/E103",
	},

	// ============================================
	// Routing Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryRouting,
		Message:  "Invalid route pattern",
		Detail:   "Route patterns must start with '/' and use {name} for parameters.",
		DocURL:   "https://bloxi.dev/docs/errors/E201",
	},

	// ============================================
	// Publish Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryPublish,
		Message:  "Stylesheet publish failed",
		Detail:   "The stylesheet could not be written to the configured store.",
		DocURL:   "https://bloxi.dev/docs/errors/E301",
	},
}

// Codes returns all registered error codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template Template) {
	registry[code] = template
}

// Package errors provides structured, actionable error messages for bloxi.
//
// Every error carries a code (e.g., "E101") that maps to a registered
// template with a short message, a longer explanation and a documentation
// link. Errors can carry a source location, a fix suggestion and a wrapped
// cause, and format themselves for terminals or as JSON.
//
// # Error Categories
//
//   - runtime: rendering and mounting failures
//   - config: missing, malformed or invalid bloxi.json / bloxi.yaml
//   - routing: invalid route patterns
//   - publish: stylesheet upload failures
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail(`no element with id "app"`).
//	    WithSuggestion(`Render a container with bloxi.Div(bloxi.Props{{"id", "app"}})`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Mount target not found
//	//
//	//   no element with id "app"
//	//
//	//   Hint: Render a container with bloxi.Div(bloxi.Props{{"id", "app"}})
//	//
//	//   Learn more: https://bloxi.dev/docs/errors/E001
package errors

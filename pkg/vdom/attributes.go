package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

package router

import (
	"strings"

	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// LinkAttr marks anchors that navigate between routes.
const LinkAttr = "data-link"

// Link creates an anchor to href. props are applied on top of the href and
// may carry style props like any factory.
func Link(href string, props bloxi.Props, children ...any) *vdom.VNode {
	base := bloxi.Props{{"href", href}, {LinkAttr, "true"}}
	return bloxi.A(base.Merge(props), children...)
}

// Link creates an anchor to a route path, resolved against the base path.
func (c *Context) Link(href string, props bloxi.Props, children ...any) *vdom.VNode {
	return Link(c.Href(href), props, children...)
}

// ActiveLink creates a link that gets activeClass and aria-current="page"
// when the current location matches href. With exact false a location
// below href also matches.
func (c *Context) ActiveLink(href, activeClass string, exact bool, props bloxi.Props, children ...any) *vdom.VNode {
	if !c.IsActive(href, exact) {
		return c.Link(href, props, children...)
	}

	class := activeClass
	if existing, ok := props.Get("className"); ok {
		if s, ok := existing.(string); ok && s != "" {
			class = s + " " + activeClass
		}
	}
	active := bloxi.Props{{"aria-current", "page"}}
	if activeClass != "" {
		active = active.Set("className", class)
	}
	return c.Link(href, props.Merge(active), children...)
}

// IsActive reports whether the current location matches the route path.
func (c *Context) IsActive(href string, exact bool) bool {
	loc := strings.TrimSuffix(c.Location(), "/")
	target := strings.TrimSuffix(href, "/")
	if loc == target {
		return true
	}
	return !exact && strings.HasPrefix(loc, target+"/")
}

// LocationDisplay renders the current location in a span, for debugging
// route setups.
func (c *Context) LocationDisplay(props bloxi.Props) *vdom.VNode {
	return bloxi.Span(props, c.Location())
}

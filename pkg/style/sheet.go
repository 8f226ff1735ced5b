package style

import (
	"cmp"
	"slices"
	"strings"
)

// SheetID identifies the injected stylesheet in a document.
const SheetID = "bloxi-media-queries"

// ResponsiveProperties are the CSS properties that get breakpoint rules.
// Overrides of other props are emitted by Compile but have no effect.
var ResponsiveProperties = []string{
	"width",
	"height",
	"padding",
	"margin",
	"display",
	"flex-direction",
	"justify-content",
	"align-items",
	"gap",
	"grid-template-columns",
	"color",
	"background-color",
	"font-size",
	"text-align",
}

// Host is a document that can carry the stylesheet.
type Host interface {
	// HasElement reports whether an element with the id already exists.
	HasElement(id string) bool
	// AppendStyle adds a <style> element with the id and CSS text.
	AppendStyle(id, css string)
}

// Sheet is the static stylesheet mapping override custom properties onto
// real properties. Its text is built once and never changes.
type Sheet struct {
	breakpoints []Breakpoint
	css         string
}

// NewSheet builds the stylesheet for the given breakpoints. A nil slice
// uses DefaultBreakpoints. Media blocks are written narrowest first, so at
// any viewport the widest matching breakpoint wins.
func NewSheet(bps []Breakpoint) *Sheet {
	if bps == nil {
		bps = DefaultBreakpoints()
	}
	sorted := append([]Breakpoint(nil), bps...)
	slices.SortStableFunc(sorted, func(a, b Breakpoint) int {
		return cmp.Compare(a.MinWidth, b.MinWidth)
	})
	s := &Sheet{breakpoints: sorted}
	s.css = s.build()
	return s
}

// ID returns the element id the sheet is injected under.
func (s *Sheet) ID() string { return SheetID }

// CSS returns the stylesheet text.
func (s *Sheet) CSS() string { return s.css }

// Breakpoints returns the breakpoints the sheet covers, base included.
func (s *Sheet) Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), s.breakpoints...)
}

// Inject adds the stylesheet to host unless an element with SheetID is
// already present. It reports whether this call injected the sheet. A nil
// host has nowhere to inject into and is a no-op.
func (s *Sheet) Inject(host Host) bool {
	if host == nil || isNil(host) {
		return false
	}
	if host.HasElement(SheetID) {
		return false
	}
	host.AppendStyle(SheetID, s.css)
	return true
}

// build writes one @media block per non-base breakpoint. Selectors match the
// declaration including its colon so that --bx-mq-md-padding does not match
// --bx-mq-md-paddingTop. The rules are !important so they win over the inline
// base declaration on the same element.
func (s *Sheet) build() string {
	var b strings.Builder
	b.WriteString("/* bloxi media query runtime */\n")
	for _, bp := range s.breakpoints {
		query := bp.MediaQuery()
		if query == "" {
			continue
		}
		b.WriteString("@media ")
		b.WriteString(query)
		b.WriteString(" {\n")
		for _, prop := range ResponsiveProperties {
			name := VarName(bp.Name, PropName(prop))
			b.WriteString(`  [style*="`)
			b.WriteString(name)
			b.WriteString(`:"] { `)
			b.WriteString(prop)
			b.WriteString(": var(")
			b.WriteString(name)
			b.WriteString(") !important; }\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

package style

import "strconv"

// Base is the breakpoint that always applies.
const Base = "base"

// Breakpoint is a named minimum viewport width in pixels.
// The Base breakpoint has no width condition.
type Breakpoint struct {
	Name     string
	MinWidth int
}

// breakpoints is the process-wide table, smallest first. It is never
// mutated after package initialization.
var breakpoints = []Breakpoint{
	{Name: Base, MinWidth: 0},
	{Name: "xs", MinWidth: 480},
	{Name: "sm", MinWidth: 640},
	{Name: "md", MinWidth: 768},
	{Name: "lg", MinWidth: 1024},
	{Name: "xl", MinWidth: 1280},
	{Name: "2xl", MinWidth: 1536},
}

var breakpointIndex = func() map[string]int {
	m := make(map[string]int, len(breakpoints))
	for i, bp := range breakpoints {
		m[bp.Name] = i
	}
	return m
}()

// DefaultBreakpoints returns a copy of the breakpoint table, base first.
func DefaultBreakpoints() []Breakpoint {
	out := make([]Breakpoint, len(breakpoints))
	copy(out, breakpoints)
	return out
}

// BreakpointWidths returns the name -> minimum width table without base.
func BreakpointWidths() map[string]int {
	m := make(map[string]int, len(breakpoints)-1)
	for _, bp := range breakpoints {
		if bp.Name == Base {
			continue
		}
		m[bp.Name] = bp.MinWidth
	}
	return m
}

// IsBreakpoint reports whether name is a recognized breakpoint, base included.
func IsBreakpoint(name string) bool {
	_, ok := breakpointIndex[name]
	return ok
}

// MediaQuery returns the media condition for a breakpoint, or "" for base
// and unknown names.
func (b Breakpoint) MediaQuery() string {
	if b.Name == Base || b.MinWidth <= 0 {
		return ""
	}
	return "(min-width: " + strconv.Itoa(b.MinWidth) + "px)"
}

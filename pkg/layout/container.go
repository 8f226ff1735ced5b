package layout

import (
	"fmt"
	"strconv"

	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/style"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

var (
	containerFactory = bloxi.MakeStyledFactory("div", "BxContainer")
	dividerFactory   = bloxi.MakeStyledFactory("div", "BxDivider")
)

// DefaultContainerSize is the max width used when none is given.
const DefaultContainerSize = "lg"

// ContainerOptions configures a centered, width-limited container.
type ContainerOptions struct {
	// MaxWidth is a breakpoint name (xs..2xl), "full", a number of pixels or
	// any CSS length. Defaults to DefaultContainerSize.
	MaxWidth any

	// Fluid makes the container full width regardless of MaxWidth.
	Fluid bool

	// CenterContent centers children in a column.
	CenterContent bool

	// Extra props are merged last and win over computed ones.
	Extra bloxi.Props
}

// ContainerWidth resolves a container size name to a CSS length. Breakpoint
// names map to their min width, "full" to 100%; anything else is returned
// unchanged.
func ContainerWidth(size any) any {
	name, ok := size.(string)
	if !ok {
		return size
	}
	if name == "full" {
		return "100%"
	}
	if w, ok := style.BreakpointWidths()[name]; ok {
		return strconv.Itoa(w) + "px"
	}
	return size
}

// Container renders a horizontally centered container.
func Container(opts ContainerOptions, children ...any) *vdom.VNode {
	maxWidth := ContainerWidth(firstSet(opts.MaxWidth, DefaultContainerSize))
	if opts.Fluid {
		maxWidth = "100%"
	}
	props := bloxi.Props{
		{"width", "100%"},
		{"maxWidth", maxWidth},
		{"marginLeft", "auto"},
		{"marginRight", "auto"},
	}
	if opts.CenterContent {
		props = append(props,
			style.Prop{Name: "display", Value: "flex"},
			style.Prop{Name: "flexDirection", Value: "column"},
			style.Prop{Name: "alignItems", Value: "center"},
		)
	}
	return containerFactory(props.Merge(opts.Extra), children...)
}

// DividerOptions configures a separator rule.
type DividerOptions struct {
	// Orientation is horizontal (default) or vertical.
	Orientation string

	// Color defaults to DefaultDividerColor.
	Color string

	// Thickness defaults to 1 (px).
	Thickness any

	// Spacing is the margin on both sides of the rule. Defaults to 1rem.
	Spacing any

	// Variant is solid (default), dashed or dotted.
	Variant string

	// Label is rendered in the middle of a horizontal divider.
	Label any

	// LabelPosition is left, center (default) or right.
	LabelPosition string

	// Extra props are merged last and win over computed ones.
	Extra bloxi.Props
}

func (o DividerOptions) withDefaults() DividerOptions {
	if o.Orientation == "" {
		o.Orientation = "horizontal"
	}
	if o.Color == "" {
		o.Color = DefaultDividerColor
	}
	if o.Thickness == nil {
		o.Thickness = 1
	}
	if o.Spacing == nil {
		o.Spacing = "1rem"
	}
	if o.Variant == "" {
		o.Variant = "solid"
	}
	if o.LabelPosition == "" {
		o.LabelPosition = "center"
	}
	return o
}

// Divider renders a horizontal or vertical rule, optionally with a label.
func Divider(opts DividerOptions) *vdom.VNode {
	o := opts.withDefaults()
	thickness := length(o.Thickness)
	spacing := length(o.Spacing)

	if o.Orientation == "horizontal" && o.Label != nil {
		return labeledDivider(o, thickness, spacing)
	}

	props := bloxi.Props{{"role", "separator"}}
	horizontal := o.Orientation == "horizontal"
	if horizontal {
		props = append(props,
			style.Prop{Name: "width", Value: "100%"},
			style.Prop{Name: "margin", Value: spacing + " 0"},
		)
	} else {
		props = append(props,
			style.Prop{Name: "aria-orientation", Value: "vertical"},
			style.Prop{Name: "alignSelf", Value: "stretch"},
			style.Prop{Name: "margin", Value: "0 " + spacing},
		)
	}
	props = append(props, ruleProps(o, thickness, horizontal)...)
	props = append(props, style.Prop{Name: "flexShrink", Value: 0})
	return dividerFactory(props.Merge(o.Extra))
}

// ruleProps draws the line: a filled box for solid rules, a single border
// for dashed and dotted ones.
func ruleProps(o DividerOptions, thickness string, horizontal bool) bloxi.Props {
	if o.Variant == "solid" {
		if horizontal {
			return bloxi.Props{{"height", thickness}, {"backgroundColor", o.Color}}
		}
		return bloxi.Props{{"width", thickness}, {"backgroundColor", o.Color}}
	}
	side := "borderTop"
	size := "height"
	if !horizontal {
		side = "borderLeft"
		size = "width"
	}
	return bloxi.Props{
		{size, 0},
		{side, thickness + " " + o.Variant + " " + o.Color},
	}
}

func labeledDivider(o DividerOptions, thickness, spacing string) *vdom.VNode {
	leftFlex, rightFlex := any(1), any(1)
	switch o.LabelPosition {
	case "left":
		leftFlex, rightFlex = "0 0 2rem", "1 1 auto"
	case "right":
		leftFlex, rightFlex = "1 1 auto", "0 0 2rem"
	}

	line := func(flex any) *vdom.VNode {
		return bloxi.Div(append(bloxi.Props{{"flex", flex}}, ruleProps(o, thickness, true)...))
	}
	label := bloxi.Span(bloxi.Props{
		{"flexShrink", 0},
		{"padding", "0 calc(" + spacing + " / 2)"},
	}, o.Label)

	props := bloxi.Props{
		{"role", "separator"},
		{"display", "flex"},
		{"alignItems", "center"},
		{"width", "100%"},
		{"margin", spacing + " 0"},
	}
	return dividerFactory(props.Merge(o.Extra), line(leftFlex), label, line(rightFlex))
}

// length renders a number as pixels and passes strings through.
func length(v any) string {
	if s, ok := style.Normalize("width", v).(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

package layout

import (
	"strconv"

	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

var stackFactory = bloxi.MakeStyledFactory("div", "BxStack")

// FlexOptions configures a flex container. Responsive values are allowed
// everywhere except Inline.
type FlexOptions struct {
	Direction    any // row, column, row-reverse, column-reverse
	Wrap         any // nowrap, wrap, wrap-reverse
	Justify      any // justify-content
	Align        any // align-items
	AlignContent any
	Gap          any
	RowGap       any
	ColumnGap    any
	Flex         any // flex shorthand of the container itself
	Inline       bool

	// Extra props are merged last and win over computed ones.
	Extra bloxi.Props
}

func (o FlexOptions) props() bloxi.Props {
	display := "flex"
	if o.Inline {
		display = "inline-flex"
	}
	return bloxi.Props{
		{"display", display},
		{"flexDirection", o.Direction},
		{"flexWrap", o.Wrap},
		{"justifyContent", o.Justify},
		{"alignItems", o.Align},
		{"alignContent", o.AlignContent},
		{"gap", o.Gap},
		{"rowGap", o.RowGap},
		{"columnGap", o.ColumnGap},
		{"flex", o.Flex},
	}.Merge(o.Extra)
}

// Flex renders a flex container.
func Flex(opts FlexOptions, children ...any) *vdom.VNode {
	return bloxi.FlexBox(opts.props(), children...)
}

// RowOptions configures a horizontal flex container.
type RowOptions struct {
	FlexOptions

	// NoWrap disables wrapping. Rows wrap by default.
	NoWrap bool

	// Spacing is the gap between children; it takes precedence over Gap.
	Spacing any

	// VerticalAlign is top, middle, bottom, stretch or baseline and takes
	// precedence over Align.
	VerticalAlign any

	// HorizontalAlign is left, center, right or a space-* keyword and takes
	// precedence over Justify.
	HorizontalAlign any
}

// Row renders a wrapping horizontal flex container.
func Row(opts RowOptions, children ...any) *vdom.VNode {
	f := opts.FlexOptions
	f.Direction = firstSet(f.Direction, "row")
	switch {
	case opts.NoWrap:
		f.Wrap = "nowrap"
	default:
		f.Wrap = firstSet(f.Wrap, "wrap")
	}
	f.Align = firstSet(Align(opts.VerticalAlign), f.Align)
	f.Justify = firstSet(Align(opts.HorizontalAlign), f.Justify)
	f.Gap = firstSet(opts.Spacing, f.Gap)
	return bloxi.FlexRow(f.props(), children...)
}

// ColumnOptions configures a vertical flex container.
type ColumnOptions struct {
	FlexOptions

	// Spacing is the gap between children; it takes precedence over Gap.
	Spacing any

	// HorizontalAlign is left, center, right or stretch and takes precedence
	// over Align.
	HorizontalAlign any

	// VerticalAlign is top, middle, bottom or a space-* keyword and takes
	// precedence over Justify.
	VerticalAlign any

	// FullHeight sets height to 100%.
	FullHeight bool
}

// Column renders a vertical flex container.
func Column(opts ColumnOptions, children ...any) *vdom.VNode {
	f := opts.FlexOptions
	f.Direction = firstSet(f.Direction, "column")
	f.Align = firstSet(Align(opts.HorizontalAlign), f.Align)
	f.Justify = firstSet(Align(opts.VerticalAlign), f.Justify)
	f.Gap = firstSet(opts.Spacing, f.Gap)
	props := f.props()
	if opts.FullHeight {
		props = props.Set("height", "100%")
	}
	return bloxi.FlexColumn(props, children...)
}

// Stack defaults.
const (
	DefaultStackSpacing     = "1rem"
	DefaultDividerColor     = "#e2e8f0"
	DefaultDividerThickness = "1px"
)

// StackOptions configures a stack of children with uniform spacing.
type StackOptions struct {
	FlexOptions

	// Spacing defaults to DefaultStackSpacing. Ignored with Dividers.
	Spacing any

	// Horizontal lays children out in a row instead of a column.
	Horizontal bool

	// Dividers inserts a rule between adjacent children.
	Dividers bool

	// DividerColor defaults to DefaultDividerColor.
	DividerColor string

	// DividerThickness defaults to DefaultDividerThickness.
	DividerThickness any
}

// Stack renders children in a column (or row) with optional dividers.
func Stack(opts StackOptions, children ...any) *vdom.VNode {
	f := opts.FlexOptions
	if opts.Horizontal {
		f.Direction = firstSet(f.Direction, "row")
	} else {
		f.Direction = firstSet(f.Direction, "column")
	}

	if !opts.Dividers || len(children) == 0 {
		f.Gap = firstSet(opts.Spacing, f.Gap, DefaultStackSpacing)
		return stackFactory(f.props(), children...)
	}

	f.Gap = 0
	color := opts.DividerColor
	if color == "" {
		color = DefaultDividerColor
	}
	thickness := firstSet(opts.DividerThickness, DefaultDividerThickness)
	width, height := any("100%"), thickness
	if opts.Horizontal {
		width, height = thickness, "100%"
	}

	withDividers := make([]any, 0, 2*len(children)-1)
	for i, child := range children {
		withDividers = append(withDividers, child)
		if i == len(children)-1 {
			break
		}
		withDividers = append(withDividers, bloxi.Div(bloxi.Props{
			{"key", "divider-" + strconv.Itoa(i)},
			{"role", "separator"},
			{"width", width},
			{"height", height},
			{"backgroundColor", color},
			{"alignSelf", "stretch"},
			{"flexShrink", 0},
		}))
	}
	return stackFactory(f.props(), withDividers...)
}

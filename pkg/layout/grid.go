package layout

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/style"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// GridOptions configures a grid container. Responsive values are allowed
// everywhere except Inline.
type GridOptions struct {
	// Columns and Rows take a track count (3 or "3", becoming
	// repeat(3, 1fr)) or a full track list.
	Columns any
	Rows    any

	// TemplateColumns and TemplateRows take precedence over Columns and
	// Rows and are translated the same way.
	TemplateColumns any
	TemplateRows    any
	TemplateAreas   any

	AutoColumns any
	AutoRows    any
	AutoFlow    any // row, column, row dense, column dense

	Gap       any
	RowGap    any
	ColumnGap any

	JustifyItems   any
	AlignItems     any
	JustifyContent any
	AlignContent   any

	Inline bool

	// Extra props are merged last and win over computed ones.
	Extra bloxi.Props
}

// Tracks turns a track count into repeat(n, 1fr). Any Go integer kind, a
// whole float or a numeric string counts. Track lists and other values are
// returned unchanged; responsive maps are translated per breakpoint.
func Tracks(v any) any {
	return style.Transform(v, func(x any) any {
		if s, ok := x.(string); ok {
			s = strings.TrimSpace(s)
			if _, err := strconv.Atoi(s); err == nil {
				return repeat(s)
			}
			return x
		}
		if n, ok := wholeNumber(x); ok {
			return repeat(n)
		}
		return x
	})
}

// wholeNumber formats integers of any kind, and floats without a fractional
// part, in base 10.
func wholeNumber(x any) (string, bool) {
	if x == nil {
		return "", false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
	}
	return "", false
}

func repeat(n string) string {
	return "repeat(" + n + ", 1fr)"
}

// Grid renders a grid container.
func Grid(opts GridOptions, children ...any) *vdom.VNode {
	display := "grid"
	if opts.Inline {
		display = "inline-grid"
	}
	props := bloxi.Props{
		{"data-component", "BxGrid"},
		{"display", display},
		{"gridTemplateColumns", firstSet(Tracks(opts.TemplateColumns), Tracks(opts.Columns))},
		{"gridTemplateRows", firstSet(Tracks(opts.TemplateRows), Tracks(opts.Rows))},
		{"gridTemplateAreas", opts.TemplateAreas},
		{"gridAutoColumns", opts.AutoColumns},
		{"gridAutoRows", opts.AutoRows},
		{"gridAutoFlow", opts.AutoFlow},
		{"gap", opts.Gap},
		{"rowGap", opts.RowGap},
		{"columnGap", opts.ColumnGap},
		{"justifyItems", opts.JustifyItems},
		{"alignItems", opts.AlignItems},
		{"justifyContent", opts.JustifyContent},
		{"alignContent", opts.AlignContent},
	}
	return bloxi.GridBox(props.Merge(opts.Extra), children...)
}

// GridItemOptions places a child in a grid.
type GridItemOptions struct {
	ColStart any
	ColEnd   any
	RowStart any
	RowEnd   any

	// ColSpan and RowSpan override ColEnd and RowEnd. With an integer start
	// the end line is start+span, otherwise "span n".
	ColSpan int
	RowSpan int

	Area        any
	JustifySelf any
	AlignSelf   any

	// Extra props are merged last and win over computed ones.
	Extra bloxi.Props
}

// GridItem renders a grid cell.
func GridItem(opts GridItemOptions, children ...any) *vdom.VNode {
	props := bloxi.Props{
		{"gridColumnStart", gridLine(opts.ColStart)},
		{"gridColumnEnd", gridEnd(opts.ColStart, opts.ColEnd, opts.ColSpan)},
		{"gridRowStart", gridLine(opts.RowStart)},
		{"gridRowEnd", gridEnd(opts.RowStart, opts.RowEnd, opts.RowSpan)},
		{"gridArea", opts.Area},
		{"justifySelf", opts.JustifySelf},
		{"alignSelf", opts.AlignSelf},
	}
	return bloxi.GridCell(props.Merge(opts.Extra), children...)
}

func gridEnd(start, end any, span int) any {
	if span <= 0 {
		return gridLine(end)
	}
	if n, ok := start.(int); ok {
		return strconv.Itoa(n + span)
	}
	return "span " + strconv.Itoa(span)
}

// gridLine formats numeric line numbers as strings so they are not given a
// px unit.
func gridLine(v any) any {
	return style.Transform(v, func(x any) any {
		switch x.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return fmt.Sprint(x)
		}
		return x
	})
}

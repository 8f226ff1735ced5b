package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/render"
	"github.com/bloxi-go/bloxi/pkg/style"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

func styleOf(t *testing.T, node *vdom.VNode) style.Record {
	t.Helper()
	rec, ok := node.Props["style"].(style.Record)
	if !ok {
		t.Fatalf("style prop = %#v", node.Props["style"])
	}
	return rec
}

func assertStyle(t *testing.T, node *vdom.VNode, want map[string]any) {
	t.Helper()
	rec := styleOf(t, node)
	for name, w := range want {
		got, ok := rec.Get(name)
		if w == nil {
			if ok {
				t.Errorf("%s = %#v, want unset", name, got)
			}
			continue
		}
		if !reflect.DeepEqual(got, w) {
			t.Errorf("%s = %#v, want %#v", name, got, w)
		}
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{"left", "flex-start"},
		{"top", "flex-start"},
		{"center", "center"},
		{"middle", "center"},
		{"right", "flex-end"},
		{"bottom", "flex-end"},
		{"stretch", "stretch"},
		{"space-between", "space-between"},
		{"baseline", "baseline"},
		{3, 3},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := Align(tt.in); got != tt.want {
			t.Errorf("Align(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}

	got := Align(style.R{"base": "left", "md": "middle", "lg": "space-around"})
	want := style.R{"base": "flex-start", "md": "center", "lg": "space-around"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("responsive Align = %#v, want %#v", got, want)
	}
}

func TestFlex(t *testing.T) {
	node := Flex(FlexOptions{
		Direction: "column",
		Justify:   "space-between",
		Gap:       12,
		Inline:    true,
		Extra:     bloxi.Props{{"id", "f"}, {"gap", 4}},
	}, "a", "b")

	if bloxi.DisplayName(node) != "BxFlex" {
		t.Errorf("DisplayName = %q", bloxi.DisplayName(node))
	}
	assertStyle(t, node, map[string]any{
		"display":        "inline-flex",
		"flexDirection":  "column",
		"justifyContent": "space-between",
		"gap":            "4px",
		"flexWrap":       nil,
	})
	if node.Props["id"] != "f" {
		t.Errorf("Extra attributes not forwarded: %v", node.Props)
	}
	if len(node.Children) != 2 {
		t.Errorf("children = %d", len(node.Children))
	}
}

func TestRow(t *testing.T) {
	node := Row(RowOptions{
		HorizontalAlign: "right",
		VerticalAlign:   "middle",
		Spacing:         8,
		FlexOptions:     FlexOptions{Gap: 100, Align: "baseline"},
	})
	assertStyle(t, node, map[string]any{
		"display":        "flex",
		"flexDirection":  "row",
		"flexWrap":       "wrap",
		"justifyContent": "flex-end",
		"alignItems":     "center",
		"gap":            "8px",
	})

	node = Row(RowOptions{NoWrap: true, FlexOptions: FlexOptions{Align: "baseline", Wrap: "wrap-reverse"}})
	assertStyle(t, node, map[string]any{
		"flexWrap":   "nowrap",
		"alignItems": "baseline",
	})
}

func TestRowResponsive(t *testing.T) {
	node := Row(RowOptions{
		FlexOptions:   FlexOptions{Direction: style.R{"base": "column", "md": "row"}},
		VerticalAlign: style.R{"base": "top", "md": "bottom"},
	})
	assertStyle(t, node, map[string]any{
		"flexDirection":            "column",
		"--bx-mq-md-flexDirection": "row",
		"alignItems":               "flex-start",
		"--bx-mq-md-alignItems":    "flex-end",
	})
}

func TestColumn(t *testing.T) {
	node := Column(ColumnOptions{
		HorizontalAlign: "center",
		VerticalAlign:   "bottom",
		Spacing:         "2rem",
		FullHeight:      true,
	})
	assertStyle(t, node, map[string]any{
		"flexDirection":  "column",
		"alignItems":     "center",
		"justifyContent": "flex-end",
		"gap":            "2rem",
		"height":         "100%",
		"flexWrap":       nil,
	})
	if bloxi.DisplayName(node) != "BxFlexColumn" {
		t.Errorf("DisplayName = %q", bloxi.DisplayName(node))
	}

	node = Column(ColumnOptions{FlexOptions: FlexOptions{Extra: bloxi.Props{{"height", 50}}}})
	assertStyle(t, node, map[string]any{"height": "50px"})
}

func TestStack(t *testing.T) {
	node := Stack(StackOptions{}, "a", "b")
	assertStyle(t, node, map[string]any{
		"flexDirection": "column",
		"gap":           "1rem",
	})
	if len(node.Children) != 2 {
		t.Errorf("children = %d", len(node.Children))
	}

	node = Stack(StackOptions{Horizontal: true, Spacing: 4})
	assertStyle(t, node, map[string]any{
		"flexDirection": "row",
		"gap":           "4px",
	})
}

func TestStackDividers(t *testing.T) {
	node := Stack(StackOptions{Dividers: true, DividerColor: "red"},
		bloxi.P(nil, "one"), bloxi.P(nil, "two"), bloxi.P(nil, "three"))

	if len(node.Children) != 5 {
		t.Fatalf("children = %d, want 5", len(node.Children))
	}
	assertStyle(t, node, map[string]any{"gap": "0px"})

	divider := node.Children[1]
	if divider.Key != "divider-0" || node.Children[3].Key != "divider-1" {
		t.Errorf("divider keys = %q, %q", divider.Key, node.Children[3].Key)
	}
	assertStyle(t, divider, map[string]any{
		"width":           "100%",
		"height":          "1px",
		"backgroundColor": "red",
		"flexShrink":      0,
	})

	horizontal := Stack(StackOptions{Dividers: true, Horizontal: true, DividerThickness: 2}, "a", "b")
	assertStyle(t, horizontal.Children[1], map[string]any{
		"width":  "2px",
		"height": "100%",
	})
}

func TestTracks(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{3, "repeat(3, 1fr)"},
		{"4", "repeat(4, 1fr)"},
		{2.0, "repeat(2, 1fr)"},
		{"200px 1fr", "200px 1fr"},
		{"repeat(auto-fill, minmax(100px, 1fr))", "repeat(auto-fill, minmax(100px, 1fr))"},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := Tracks(tt.in); got != tt.want {
			t.Errorf("Tracks(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}

	got := Tracks(style.R{"base": 1, "md": 2, "xl": "1fr 3fr"})
	want := style.R{"base": "repeat(1, 1fr)", "md": "repeat(2, 1fr)", "xl": "1fr 3fr"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGrid(t *testing.T) {
	node := Grid(GridOptions{
		Columns: style.R{"base": 1, "md": 3},
		Rows:    2,
		Gap:     16,
	})
	assertStyle(t, node, map[string]any{
		"display":                        "grid",
		"gridTemplateColumns":            "repeat(1, 1fr)",
		"--bx-mq-md-gridTemplateColumns": "repeat(3, 1fr)",
		"gridTemplateRows":               "repeat(2, 1fr)",
		"gap":                            "16px",
		"gridGap":                        nil,
	})
	if node.Props["data-component"] != "BxGrid" {
		t.Errorf("data-component = %v", node.Props["data-component"])
	}

	node = Grid(GridOptions{Columns: 2, TemplateColumns: "1fr 2fr", Inline: true})
	assertStyle(t, node, map[string]any{
		"display":             "inline-grid",
		"gridTemplateColumns": "1fr 2fr",
	})

	counts := []struct {
		name string
		in   any
		want any
	}{
		{"int", 3, "repeat(3, 1fr)"},
		{"int8", int8(3), "repeat(3, 1fr)"},
		{"int32", int32(3), "repeat(3, 1fr)"},
		{"int64", int64(3), "repeat(3, 1fr)"},
		{"uint", uint(3), "repeat(3, 1fr)"},
		{"uint16", uint16(3), "repeat(3, 1fr)"},
		{"float32", float32(3), "repeat(3, 1fr)"},
		{"float64", 3.0, "repeat(3, 1fr)"},
		{"string", " 3 ", "repeat(3, 1fr)"},
		{"fractional float", 2.5, "2.5px"},
		{"track list", "200px 1fr", "200px 1fr"},
	}
	for _, tt := range counts {
		t.Run(tt.name, func(t *testing.T) {
			assertStyle(t, Grid(GridOptions{Columns: tt.in}), map[string]any{
				"gridTemplateColumns": tt.want,
			})
		})
	}
}

func TestGridItem(t *testing.T) {
	tests := []struct {
		name string
		opts GridItemOptions
		want map[string]any
	}{
		{
			name: "numeric start with span",
			opts: GridItemOptions{ColStart: 2, ColSpan: 3},
			want: map[string]any{"gridColumnStart": "2", "gridColumnEnd": "5"},
		},
		{
			name: "span only",
			opts: GridItemOptions{RowSpan: 2},
			want: map[string]any{"gridRowEnd": "span 2", "gridRowStart": nil},
		},
		{
			name: "explicit end",
			opts: GridItemOptions{ColStart: "auto", ColEnd: -1},
			want: map[string]any{"gridColumnStart": "auto", "gridColumnEnd": "-1"},
		},
		{
			name: "area and self alignment",
			opts: GridItemOptions{Area: "sidebar", AlignSelf: "end"},
			want: map[string]any{"gridArea": "sidebar", "alignSelf": "end"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertStyle(t, GridItem(tt.opts), tt.want)
		})
	}
}

func TestContainer(t *testing.T) {
	tests := []struct {
		name string
		opts ContainerOptions
		want any
	}{
		{"default", ContainerOptions{}, "1024px"},
		{"named", ContainerOptions{MaxWidth: "sm"}, "640px"},
		{"2xl", ContainerOptions{MaxWidth: "2xl"}, "1536px"},
		{"full", ContainerOptions{MaxWidth: "full"}, "100%"},
		{"number", ContainerOptions{MaxWidth: 900}, "900px"},
		{"length", ContainerOptions{MaxWidth: "60ch"}, "60ch"},
		{"fluid", ContainerOptions{MaxWidth: "sm", Fluid: true}, "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Container(tt.opts)
			assertStyle(t, node, map[string]any{
				"maxWidth":    tt.want,
				"width":       "100%",
				"marginLeft":  "auto",
				"marginRight": "auto",
				"display":     nil,
			})
		})
	}

	centered := Container(ContainerOptions{CenterContent: true})
	assertStyle(t, centered, map[string]any{
		"display":       "flex",
		"flexDirection": "column",
		"alignItems":    "center",
	})
}

func TestDivider(t *testing.T) {
	node := Divider(DividerOptions{})
	assertStyle(t, node, map[string]any{
		"width":           "100%",
		"height":          "1px",
		"backgroundColor": DefaultDividerColor,
		"margin":          "1rem 0",
	})
	if node.Props["role"] != "separator" {
		t.Errorf("role = %v", node.Props["role"])
	}

	vertical := Divider(DividerOptions{Orientation: "vertical", Thickness: 2, Spacing: 8, Variant: "dashed", Color: "#000"})
	assertStyle(t, vertical, map[string]any{
		"width":      "0px",
		"borderLeft": "2px dashed #000",
		"margin":     "0 8px",
		"alignSelf":  "stretch",
	})
	if vertical.Props["aria-orientation"] != "vertical" {
		t.Errorf("aria-orientation = %v", vertical.Props["aria-orientation"])
	}
}

func TestDividerLabel(t *testing.T) {
	node := Divider(DividerOptions{Label: "OR", LabelPosition: "left"})
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(node.Children))
	}
	assertStyle(t, node.Children[0], map[string]any{"flex": "0 0 2rem", "height": "1px"})
	assertStyle(t, node.Children[2], map[string]any{"flex": "1 1 auto"})

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, ">OR</span>") {
		t.Errorf("label not rendered: %s", html)
	}

	centered := Divider(DividerOptions{Label: "x"})
	assertStyle(t, centered.Children[0], map[string]any{"flex": 1})
	assertStyle(t, centered.Children[1], map[string]any{"padding": "0 calc(1rem / 2)"})
}

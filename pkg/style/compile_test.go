package style

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		prop  string
		value any
		want  any
	}{
		{"width int", "width", 5, "5px"},
		{"opacity unitless", "opacity", 5, 5},
		{"zIndex unitless", "zIndex", 10, 10},
		{"lineHeight float unitless", "lineHeight", 1.5, 1.5},
		{"float length", "margin", 1.5, "1.5px"},
		{"float32 length", "top", float32(0.25), "0.25px"},
		{"uint length", "height", uint8(3), "3px"},
		{"negative", "left", -4, "-4px"},
		{"zero", "padding", 0, "0px"},
		{"string unchanged", "width", "50%", "50%"},
		{"bool unchanged", "width", true, true},
		{"strokeWidth unitless", "strokeWidth", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.prop, tt.value); got != tt.want {
				t.Errorf("Normalize(%q, %#v) = %#v, want %#v", tt.prop, tt.value, got, tt.want)
			}
		})
	}
}

func TestCompilePlainValues(t *testing.T) {
	values := []any{5, 2.5, "red", "10em", 0}
	for _, v := range values {
		for _, prop := range []string{"width", "opacity", "color"} {
			got := Compile(Props{{prop, v}})
			want := Record{{prop, Normalize(prop, v)}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Compile(%s: %#v) = %#v, want %#v", prop, v, got, want)
			}
		}
	}
}

func TestCompileResponsive(t *testing.T) {
	got := Compile(Props{{"padding", R{"base": 8, "md": 16}}})
	want := Record{
		{"padding", "8px"},
		{"--bx-mq-md-padding", "16px"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestCompileResponsiveWithoutBase(t *testing.T) {
	got := Compile(Props{{"width", R{"sm": 10}}})
	if _, ok := got.Get("width"); ok {
		t.Error("width should not be emitted without a base value")
	}
	want := Record{{"--bx-mq-sm-width", "10px"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestCompileOverridesInBreakpointOrder(t *testing.T) {
	got := Compile(Props{{"flexDirection", R{"xl": "row", "base": "column", "sm": "row-reverse", "bogus": "x"}}})
	want := Record{
		{"flexDirection", "column"},
		{"--bx-mq-sm-flexDirection", "row-reverse"},
		{"--bx-mq-xl-flexDirection", "row"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestCompileSkipsUndefined(t *testing.T) {
	got := Compile(Props{
		{"width", nil},
		{"height", R{"base": nil, "md": nil}},
		{"color", "blue"},
	})
	want := Record{{"color", "blue"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
	for _, decl := range got {
		if decl.Value == nil {
			t.Errorf("%s has nil value", decl.Name)
		}
	}
}

func TestCompilePreservesInputOrder(t *testing.T) {
	got := Compile(Props{{"zIndex", 2}, {"color", "red"}, {"width", 1}})
	names := Props(got).Names()
	if strings.Join(names, ",") != "zIndex,color,width" {
		t.Errorf("order = %v", names)
	}
}

func TestCompileUnitlessOverride(t *testing.T) {
	got := Compile(Props{{"opacity", R{"base": 0, "lg": 1}}})
	want := Record{{"opacity", 0}, {"--bx-mq-lg-opacity", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestCompilePassesThroughUnknownValues(t *testing.T) {
	fn := func() {}
	got := Compile(Props{{"content", fn}, {"margin", map[string]any{"top": 1}}})
	if got.Len() != 2 {
		t.Fatalf("len = %d, want 2", got.Len())
	}
	if _, ok := got[0].Value.(func()); !ok {
		t.Errorf("func value should pass through, got %T", got[0].Value)
	}
	if _, ok := got[1].Value.(map[string]any); !ok {
		t.Errorf("plain map should pass through, got %T", got[1].Value)
	}
}

func TestCompileMapSortsNames(t *testing.T) {
	got := CompileMap(map[string]any{"width": 1, "color": "red"})
	want := Record{{"color", "red"}, {"width", "1px"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestRecordString(t *testing.T) {
	rec := Compile(Props{
		{"width", 100},
		{"backgroundColor", "#fff"},
		{"padding", R{"base": 8, "md": 16}},
	})
	want := "width: 100px; background-color: #fff; padding: 8px; --bx-mq-md-padding: 16px"
	if got := rec.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRecordSetReplacesInPlace(t *testing.T) {
	rec := Record{{"width", "1px"}, {"color", "red"}}
	rec = rec.Set("width", "2px")
	rec = rec.Set("height", nil)
	want := Record{{"width", "2px"}, {"color", "red"}}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("got %#v, want %#v", rec, want)
	}
}

func TestCSSName(t *testing.T) {
	tests := map[string]string{
		"width":               "width",
		"backgroundColor":     "background-color",
		"gridTemplateColumns": "grid-template-columns",
		"WebkitTransform":     "-webkit-transform",
		"msTransition":        "-ms-transition",
		"--bx-mq-md-fontSize": "--bx-mq-md-fontSize",
		"text-align":          "text-align",
	}
	for in, want := range tests {
		if got := CSSName(in); got != want {
			t.Errorf("CSSName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPropName(t *testing.T) {
	tests := map[string]string{
		"width":                 "width",
		"flex-direction":        "flexDirection",
		"grid-template-columns": "gridTemplateColumns",
		"background-color":      "backgroundColor",
	}
	for in, want := range tests {
		if got := PropName(in); got != want {
			t.Errorf("PropName(%q) = %q, want %q", in, got, want)
		}
	}
}

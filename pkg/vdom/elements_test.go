package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := CreateElement("section")
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "section" {
			t.Errorf("Tag = %v, want section", node.Tag)
		}
	})

	t.Run("with attributes", func(t *testing.T) {
		node := Div(Class("card", "wide"), ID("main"), Data("testid", "x"))
		if node.Props["class"] != "card wide" {
			t.Errorf("class = %v, want card wide", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
		if node.Props["data-testid"] != "x" {
			t.Errorf("data-testid = %v, want x", node.Props["data-testid"])
		}
	})

	t.Run("with props map", func(t *testing.T) {
		node := Div(Props{"title": "t", "key": "k1"})
		if node.Props["title"] != "t" {
			t.Errorf("title = %v", node.Props["title"])
		}
		if node.Key != "k1" {
			t.Errorf("Key = %q, want k1", node.Key)
		}
		if _, ok := node.Props["key"]; ok {
			t.Error("key must not be stored as an attribute")
		}
	})

	t.Run("with children", func(t *testing.T) {
		node := Div(Span("a"), "b", []*VNode{Span(), nil}, []any{Span(), "c"}, nil)
		if len(node.Children) != 5 {
			t.Fatalf("Children len = %v, want 5", len(node.Children))
		}
		if node.Children[1].Kind != KindText || node.Children[1].Text != "b" {
			t.Errorf("string child = %+v", node.Children[1])
		}
	})

	t.Run("with component", func(t *testing.T) {
		node := Div(Func(func() *VNode { return Text("x") }))
		if len(node.Children) != 1 || node.Children[0].Kind != KindComponent {
			t.Fatalf("expected one component child, got %+v", node.Children)
		}
	})

	t.Run("empty attr ignored", func(t *testing.T) {
		node := Div(AttrIf(false, Hidden()))
		if len(node.Props) != 0 {
			t.Errorf("Props = %v, want empty", node.Props)
		}
	})
}

func TestAppendChildSkipsAttributes(t *testing.T) {
	node := Div()
	node.AppendChild(ID("x"), Text("a"), "b")
	if len(node.Props) != 0 {
		t.Errorf("AppendChild must not set attributes, got %v", node.Props)
	}
	if len(node.Children) != 2 {
		t.Errorf("Children len = %d, want 2", len(node.Children))
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "img", "input", "hr"} {
		if !IsVoidElement(tag) {
			t.Errorf("%s should be void", tag)
		}
	}
	for _, tag := range []string{"div", "span", "style"} {
		if IsVoidElement(tag) {
			t.Errorf("%s should not be void", tag)
		}
	}
}

func TestHelpers(t *testing.T) {
	if n := Textf("%d items", 3); n.Text != "3 items" {
		t.Errorf("Textf = %q", n.Text)
	}
	if If(false, Span()) != nil {
		t.Error("If(false) should be nil")
	}
	frag := Fragment(Span(), nil, "x")
	if frag.Kind != KindFragment || len(frag.Children) != 2 {
		t.Errorf("Fragment = %+v", frag)
	}
	nodes := Range([]string{"a", "", "b"}, func(s string, _ int) *VNode {
		if s == "" {
			return nil
		}
		return Span(s)
	})
	if len(nodes) != 2 {
		t.Errorf("Range len = %d, want 2", len(nodes))
	}
	if k := Key(42); k.Key != "key" || k.Value != "42" {
		t.Errorf("Key(42) = %+v", k)
	}
	style := StyleElement("s", "a{}")
	if style.ID() != "s" || style.Children[0].Kind != KindRaw {
		t.Errorf("StyleElement = %+v", style)
	}
}

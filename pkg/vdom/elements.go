package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// CreateElement creates an element node. Later attributes overwrite earlier
// ones; a "key" attribute sets the node key instead of an attribute.
func CreateElement(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

func (v *VNode) apply(arg any) {
	switch a := arg.(type) {
	case nil:
		// Ignore nil (allows conditional arguments)

	case Attr:
		v.setAttr(a.Key, a.Value)

	case []Attr:
		for _, attr := range a {
			v.setAttr(attr.Key, attr.Value)
		}

	case Props:
		for key, value := range a {
			v.setAttr(key, value)
		}

	case *VNode:
		if a != nil {
			v.Children = append(v.Children, a)
		}

	case []*VNode:
		for _, child := range a {
			if child != nil {
				v.Children = append(v.Children, child)
			}
		}

	case []any:
		for _, item := range a {
			v.apply(item)
		}

	case Component:
		v.Children = append(v.Children, &VNode{Kind: KindComponent, Comp: a})

	case string:
		v.Children = append(v.Children, Text(a))
	}
}

func (v *VNode) setAttr(key string, value any) {
	if key == "" {
		return
	}
	if key == "key" {
		if s, ok := value.(string); ok {
			v.Key = s
		}
		return
	}
	v.Props[key] = value
}

// AppendChild adds children to an element, accepting the same child
// arguments as CreateElement.
func (v *VNode) AppendChild(children ...any) {
	for _, child := range children {
		switch child.(type) {
		case Attr, []Attr, Props:
			continue
		}
		v.apply(child)
	}
}

// Div creates a <div> element.
func Div(args ...any) *VNode { return CreateElement("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return CreateElement("span", args...) }

// A creates an <a> element.
func A(args ...any) *VNode { return CreateElement("a", args...) }

// StyleElement creates a <style> element holding css, unescaped.
func StyleElement(id, css string) *VNode {
	return CreateElement("style", ID(id), Raw(css))
}

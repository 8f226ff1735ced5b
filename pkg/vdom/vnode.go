package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Deferred render function
	KindRaw                    // Raw HTML, written unescaped
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a renderable node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes, style and pass-through values
	Children []*VNode  // Child nodes
	Key      string    // List identity, never rendered
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds attributes and pass-through values. Keys starting with "_"
// are internal and never rendered.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// ID returns the node's id attribute, or "".
func (v *VNode) ID() string {
	if v == nil || v.Props == nil {
		return ""
	}
	id, _ := v.Props["id"].(string)
	return id
}

// Walk visits v and its descendants depth first until fn returns false.
// Component nodes are not expanded.
func (v *VNode) Walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, child := range v.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByID returns the first element in the tree with the given id.
func (v *VNode) FindByID(id string) *VNode {
	var found *VNode
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

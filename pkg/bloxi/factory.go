package bloxi

import (
	"fmt"
	"reflect"

	"github.com/bloxi-go/bloxi/pkg/style"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// Props is an ordered prop bag.
type Props = style.Props

// Factory builds an element from props and children. Children may be nodes,
// strings, numbers, components or slices of those; nil and bool children
// render nothing.
type Factory func(props Props, children ...any) *vdom.VNode

// Reserved prop names handled by factories.
const (
	PropAs          = "as"
	PropStyle       = "style"
	PropChildren    = "children"
	PropKey         = "key"
	PropDisplayName = "_displayName"
)

// identityProps are consulted in order for a node key when none is given.
var identityProps = []string{"id", "data-testid", "data-id"}

// FactoryOptions configures NewFactory.
type FactoryOptions struct {
	// DisplayName is recorded on every node under PropDisplayName.
	DisplayName string

	// Table decides which props are style props. Defaults to style.DefaultTable.
	Table style.Table

	// Keys generates keys for unkeyed children. Defaults to DefaultKeys.
	Keys *KeyGen
}

// MakeStyledFactory returns a factory for tag that routes style props into
// the inline style. The first displayName, if any, is recorded on each node.
func MakeStyledFactory(tag string, displayName ...string) Factory {
	var opts FactoryOptions
	if len(displayName) > 0 {
		opts.DisplayName = displayName[0]
	}
	return NewFactory(tag, opts)
}

// NewFactory returns a styled factory for tag with explicit options.
func NewFactory(tag string, opts FactoryOptions) Factory {
	if tag == "" {
		tag = "div"
	}
	if opts.Table == nil {
		opts.Table = style.DefaultTable
	}
	if opts.Keys == nil {
		opts.Keys = DefaultKeys
	}
	return func(props Props, children ...any) *vdom.VNode {
		return build(tag, opts, props, children)
	}
}

// Extend returns a factory that calls base with defaults merged under the
// caller's props. Caller props win.
func Extend(base Factory, defaults Props, displayName ...string) Factory {
	defaults = defaults.Clone()
	return func(props Props, children ...any) *vdom.VNode {
		node := base(defaults.Merge(props), children...)
		if len(displayName) > 0 && displayName[0] != "" && node != nil {
			node.Props[PropDisplayName] = displayName[0]
		}
		return node
	}
}

// DisplayName returns the display name recorded on node, or "".
func DisplayName(node *vdom.VNode) string {
	if node == nil || node.Props == nil {
		return ""
	}
	name, _ := node.Props[PropDisplayName].(string)
	return name
}

func build(tag string, opts FactoryOptions, props Props, children []any) *vdom.VNode {
	rest := props
	if as, ok := props.Get(PropAs); ok {
		if s, ok := as.(string); ok && s != "" {
			tag = s
		}
		rest = rest.Delete(PropAs)
	}
	override, hasOverride := rest.Get(PropStyle)
	if hasOverride {
		rest = rest.Delete(PropStyle)
	}
	if len(children) == 0 {
		if c, ok := rest.Get(PropChildren); ok {
			children = childrenFromProp(c)
		}
	}
	rest = rest.Delete(PropChildren)
	explicitKey, hasKey := rest.Get(PropKey)
	if hasKey {
		rest = rest.Delete(PropKey)
	}

	styleProps, otherProps := style.Partition(rest, opts.Table)

	rec := style.Compile(styleProps)
	if hasOverride {
		rec = rec.Merge(overrideRecord(override))
	}

	node := vdom.CreateElement(tag)
	for _, p := range otherProps {
		node.Props[p.Name] = p.Value
	}
	if rec.Len() > 0 {
		node.Props[PropStyle] = rec
	}
	if opts.DisplayName != "" {
		node.Props[PropDisplayName] = opts.DisplayName
	}

	switch {
	case hasKey && explicitKey != nil:
		node.Key = fmt.Sprint(explicitKey)
	default:
		node.Key = identityKey(otherProps)
	}

	keyed := len(children) > 1
	for i, child := range children {
		appendChild(node, child, i, keyed, opts.Keys)
	}
	return node
}

// childrenFromProp spreads a slice-valued children prop so each item is
// keyed like a variadic child.
func childrenFromProp(c any) []any {
	switch v := c.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []*vdom.VNode:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []any{v}
	}
}

func identityKey(props Props) string {
	for _, name := range identityProps {
		if v, ok := props.Get(name); ok && v != nil {
			if s := fmt.Sprint(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// overrideRecord converts a style prop value into declarations. Override
// values are taken verbatim.
func overrideRecord(v any) style.Record {
	switch s := v.(type) {
	case nil:
		return nil
	case style.Record:
		return s
	case style.Props:
		return style.Record(s)
	case map[string]any:
		return style.Record(style.FromMap(s))
	case map[string]string:
		m := make(map[string]any, len(s))
		for k, val := range s {
			m[k] = val
		}
		return style.Record(style.FromMap(m))
	default:
		return nil
	}
}

func appendChild(node *vdom.VNode, child any, index int, keyed bool, keys *KeyGen) {
	switch c := child.(type) {
	case nil, bool:
		return
	case *vdom.VNode:
		if c == nil {
			return
		}
		if keyed && c.Key == "" && (c.Kind == vdom.KindElement || c.Kind == vdom.KindComponent) {
			cp := *c
			cp.Key = keys.Next(index)
			c = &cp
		}
		node.Children = append(node.Children, c)
	case string:
		node.Children = append(node.Children, vdom.Text(c))
	case []*vdom.VNode:
		node.AppendChild(c)
	case []any:
		for _, item := range c {
			appendChild(node, item, index, false, keys)
		}
	case vdom.Component:
		comp := &vdom.VNode{Kind: vdom.KindComponent, Comp: c}
		if keyed {
			comp.Key = keys.Next(index)
		}
		node.Children = append(node.Children, comp)
	case fmt.Stringer:
		node.Children = append(node.Children, vdom.Text(c.String()))
	default:
		if isNumber(c) {
			node.Children = append(node.Children, vdom.Text(fmt.Sprint(c)))
		}
	}
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// This file re-exports node helpers, list helpers and layout helpers for the
// el package.
package el

import (
	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/layout"
	"github.com/bloxi-go/bloxi/pkg/router"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

func Text(content string) *VNode {
	return vdom.Text(content)
}
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}
func Raw(html string) *VNode {
	return vdom.Raw(html)
}
func Fragment(children ...any) *VNode {
	return vdom.Fragment(children...)
}
func If(condition bool, node *VNode) *VNode {
	return vdom.If(condition, node)
}
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}

// List renders items as keyed nodes. See bloxi.CreateList.
func List[T any](items []T, render func(item T, index int) *VNode, getKey ...bloxi.KeyFunc[T]) []*VNode {
	return bloxi.CreateList(items, render, getKey...)
}

// ListIn wraps a keyed list in an element. See bloxi.CreateContainer.
func ListIn[T any](factory Factory, props Props, items []T, render func(item T, index int) *VNode, getKey ...bloxi.KeyFunc[T]) *VNode {
	return bloxi.CreateContainer(factory, props, items, render, getKey...)
}

func Styled(tag string, displayName ...string) Factory {
	return bloxi.MakeStyledFactory(tag, displayName...)
}
func Extend(base Factory, defaults Props, displayName ...string) Factory {
	return bloxi.Extend(base, defaults, displayName...)
}
func Boundary(render func() *VNode, fallback ...*VNode) Component {
	return bloxi.Boundary(render, fallback...)
}

func Flex(opts FlexOptions, children ...any) *VNode {
	return layout.Flex(opts, children...)
}
func Row(opts RowOptions, children ...any) *VNode {
	return layout.Row(opts, children...)
}
func Column(opts ColumnOptions, children ...any) *VNode {
	return layout.Column(opts, children...)
}
func Stack(opts StackOptions, children ...any) *VNode {
	return layout.Stack(opts, children...)
}
func Grid(opts GridOptions, children ...any) *VNode {
	return layout.Grid(opts, children...)
}
func GridItem(opts GridItemOptions, children ...any) *VNode {
	return layout.GridItem(opts, children...)
}
func Container(opts ContainerOptions, children ...any) *VNode {
	return layout.Container(opts, children...)
}
func Divider(opts DividerOptions) *VNode {
	return layout.Divider(opts)
}

// Link is router.Link; inside a page prefer ctx.Link, which applies the
// base path.
func Link(href string, props Props, children ...any) *VNode {
	return router.Link(href, props, children...)
}

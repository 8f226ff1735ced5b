package bloxi

import (
	"fmt"

	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// KeyFunc extracts a list key from an item.
type KeyFunc[T any] func(item T, index int) any

// CreateList renders items and keys each node that has no key yet. Without
// getKey the item index is used. Nil nodes are dropped.
func CreateList[T any](items []T, render func(item T, index int) *vdom.VNode, getKey ...KeyFunc[T]) []*vdom.VNode {
	keyOf := func(_ T, index int) any { return index }
	if len(getKey) > 0 && getKey[0] != nil {
		keyOf = getKey[0]
	}

	nodes := make([]*vdom.VNode, 0, len(items))
	for i, item := range items {
		node := render(item, i)
		if node == nil {
			continue
		}
		if node.Key == "" && node.Kind != vdom.KindText && node.Kind != vdom.KindRaw {
			cp := *node
			cp.Key = fmt.Sprint(keyOf(item, i))
			node = &cp
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// MapItems is CreateList, named for use inline as a children argument.
func MapItems[T any](items []T, render func(item T, index int) *vdom.VNode, getKey ...KeyFunc[T]) []*vdom.VNode {
	return CreateList(items, render, getKey...)
}

// CreateContainer builds a container element from factory whose children are
// the keyed list of items.
func CreateContainer[T any](factory Factory, props Props, items []T, render func(item T, index int) *vdom.VNode, getKey ...KeyFunc[T]) *vdom.VNode {
	return factory(props, CreateList(items, render, getKey...))
}

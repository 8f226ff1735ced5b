package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}
	node.AppendChild(children...)
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute for list identity.
// The key is converted to a string using fmt.Sprint.
func Key(key any) Attr {
	return attr("key", fmt.Sprint(key))
}

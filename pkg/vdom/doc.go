// Package vdom is the node model bloxi renders through.
//
// A VNode is an element, text, fragment, component or raw HTML node. Nodes
// are plain data: nothing here diffs, patches or schedules. The render
// package serializes a tree and mounts it into a document.
//
// Elements are created with CreateElement and variadic arguments:
//
//	CreateElement("div", ID("main"),
//	    CreateElement("h1", "Title"),
//	    Text("Content"),
//	)
//
// Arguments may be nil (ignored), Attr, []Attr, Props, *VNode, []*VNode,
// Component or string (a text child).
package vdom

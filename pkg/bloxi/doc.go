// Package bloxi builds styled element trees from flat prop bags.
//
// A Factory takes an ordered Props bag and children and returns a vdom node.
// Style props (width, padding, ...) are compiled into the node's inline
// style, responsive values become per-breakpoint custom properties, and all
// other props become attributes:
//
//	bloxi.Div(bloxi.Props{
//	    {"id", "hero"},
//	    {"width", 100},
//	    {"padding", style.R{"base": 8, "md": 16}},
//	}, "Hello")
//	// <div id="hero" style="width: 100px; padding: 8px; --bx-mq-md-padding: 16px">Hello</div>
//
// The per-breakpoint overrides only take effect once the responsive
// stylesheet is in the document; call Init (or App.Mount) on each document
// before serving it.
package bloxi

// Package el is the dot-import DSL for bloxi.
//
// It re-exports the element factories from pkg/bloxi, the layout helpers
// from pkg/layout and the node helpers from pkg/vdom, so page code reads as
// one vocabulary:
//
//	import . "github.com/bloxi-go/bloxi/el"
//
//	func card(title string) *VNode {
//	    return Div(Props{{"padding", R{"base": 8, "md": 16}}},
//	        H2(nil, title),
//	        Row(RowOptions{Spacing: 8}, Button(nil, "OK")),
//	    )
//	}
package el

package bloxi

import (
	"fmt"
	"log/slog"

	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// BoundaryFallbackText is rendered in place of a subtree whose render panicked.
const BoundaryFallbackText = "An error occurred while rendering this component."

// Boundary wraps a render function so that a panic while it runs produces a
// fallback element instead of failing the whole page. Panics are logged.
// Components nested in the returned tree render outside the boundary.
func Boundary(render func() *vdom.VNode, fallback ...*vdom.VNode) vdom.Component {
	b := &boundary{render: render, logger: slog.Default().With("component", "bloxi")}
	if len(fallback) > 0 {
		b.fallback = fallback[0]
	}
	return b
}

type boundary struct {
	render   func() *vdom.VNode
	fallback *vdom.VNode
	logger   *slog.Logger
}

func (b *boundary) Render() (node *vdom.VNode) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("render panic recovered", "panic", fmt.Sprint(r))
			node = b.fallback
			if node == nil {
				node = Div(nil, BoundaryFallbackText)
			}
		}
	}()
	return b.render()
}

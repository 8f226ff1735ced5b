package el

import (
	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/layout"
	"github.com/bloxi-go/bloxi/pkg/style"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// Type aliases for the primitives used by the DSL.
type VNode = vdom.VNode
type Props = bloxi.Props
type Prop = style.Prop
type R = style.R
type Factory = bloxi.Factory
type Component = vdom.Component

// Layout option records.
type FlexOptions = layout.FlexOptions
type RowOptions = layout.RowOptions
type ColumnOptions = layout.ColumnOptions
type StackOptions = layout.StackOptions
type GridOptions = layout.GridOptions
type GridItemOptions = layout.GridItemOptions
type ContainerOptions = layout.ContainerOptions
type DividerOptions = layout.DividerOptions

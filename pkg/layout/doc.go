// Package layout provides flexbox and grid helpers on top of the bloxi
// factories.
//
// Each helper takes a typed options record and translates its vocabulary
// (horizontal/vertical alignment, column counts, container sizes) into style
// props. Option values typed any accept a string, a number or a style.R
// responsive map; translation applies to every breakpoint of a map. Props
// that have no option field go in Extra, which is merged last and wins:
//
//	layout.Row(layout.RowOptions{
//	    HorizontalAlign: "right",
//	    VerticalAlign:   style.R{"base": "top", "md": "middle"},
//	    Spacing:         8,
//	    Extra:           bloxi.Props{{"id", "toolbar"}},
//	}, saveButton, cancelButton)
package layout

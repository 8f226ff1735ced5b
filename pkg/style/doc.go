// Package style turns style props into inline CSS for bloxi elements.
//
// It owns the responsive half of the pipeline:
//
//   - Breakpoints: the process-wide table of named minimum widths.
//   - IsResponsiveMap / ResolveBase: classify a prop value and pick its base.
//   - Normalize: numeric lengths become "<n>px" except for unitless properties.
//   - Partition: split a prop bag into style-table props and pass-through props.
//   - Compile: turn style props into a Record of inline declarations, writing
//     per-breakpoint overrides as custom properties (--bx-mq-<bp>-<prop>).
//   - Sheet: the static stylesheet whose @media blocks map those custom
//     properties back onto real CSS properties.
//
// # Prop Bags
//
// Props is ordered, so compiled output follows the caller's order:
//
//	rec := style.Compile(style.Props{
//	    {"width", 100},
//	    {"padding", style.R{"base": 8, "md": 16}},
//	})
//	rec.String() // "width: 100px; padding: 8px; --bx-mq-md-padding: 16px"
//
// R is the explicit responsive discriminant. Plain string-keyed maps are also
// accepted and are treated as responsive when at least one key names a
// breakpoint.
package style

// Package render provides server-side rendering for bloxi node trees.
//
// The render package converts VNode trees into HTML strings or streams:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Full documents with a mount container and injected stylesheets
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Documents
//
// A Document is the server-side stand-in for the browser document. It owns
// the <head> styles and a <body> holding the root container that nodes are
// mounted into:
//
//	doc := render.NewDocument(render.DocumentConfig{Title: "Home"})
//	if err := doc.RenderRoot(app); err != nil {
//	    return err
//	}
//	err := renderer.RenderDocument(w, doc)
//
// Document implements style.Host, so the responsive stylesheet can be
// injected into it exactly once.
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted using
// KindRaw nodes, but should only be used with trusted content.
package render

package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bloxi-go/bloxi/internal/errors"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// DefaultRootID is the id of the container RenderRoot mounts into.
const DefaultRootID = "root"

// DocumentConfig configures a new Document.
type DocumentConfig struct {
	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Title is the page title.
	Title string

	// RootID is the id of the container created in the body.
	// Defaults to DefaultRootID. Set NoRoot to start with an empty body.
	RootID string

	// NoRoot skips creating the root container.
	NoRoot bool

	// Meta contains extra meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// Document is a server-side HTML document: a head holding styles and a body
// holding the containers nodes are mounted into. A Document is not safe for
// concurrent use; create one per request.
type Document struct {
	lang        string
	title       string
	meta        []MetaTag
	styleSheets []string
	head        []*vdom.VNode
	body        *vdom.VNode
}

// NewDocument creates a document with a root container in its body.
func NewDocument(config DocumentConfig) *Document {
	if config.Lang == "" {
		config.Lang = "en"
	}
	if config.RootID == "" {
		config.RootID = DefaultRootID
	}
	d := &Document{
		lang:        config.Lang,
		title:       config.Title,
		meta:        append([]MetaTag(nil), config.Meta...),
		styleSheets: append([]string(nil), config.StyleSheets...),
		body:        vdom.CreateElement("body"),
	}
	if !config.NoRoot {
		d.body.AppendChild(vdom.Div(vdom.ID(config.RootID)))
	}
	return d
}

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// SetTitle replaces the document title.
func (d *Document) SetTitle(title string) { d.title = title }

// Body returns the <body> element.
func (d *Document) Body() *vdom.VNode { return d.body }

// Head returns the elements appended to <head>.
func (d *Document) Head() []*vdom.VNode {
	return append([]*vdom.VNode(nil), d.head...)
}

// AppendBody adds nodes to the end of the body.
func (d *Document) AppendBody(nodes ...*vdom.VNode) {
	for _, n := range nodes {
		if n != nil {
			d.body.Children = append(d.body.Children, n)
		}
	}
}

// GetElementByID returns the element with the given id in head or body.
func (d *Document) GetElementByID(id string) *vdom.VNode {
	for _, n := range d.head {
		if found := n.FindByID(id); found != nil {
			return found
		}
	}
	return d.body.FindByID(id)
}

// HasElement reports whether an element with the id exists.
func (d *Document) HasElement(id string) bool {
	return d.GetElementByID(id) != nil
}

// AppendStyle adds a <style> element with the given id to the head.
func (d *Document) AppendStyle(id, css string) {
	d.head = append(d.head, vdom.StyleElement(id, css))
}

// Mount renders node into the container with the given id, replacing the
// container's previous content. A leading '#' on the id is ignored. Mount
// fails with E001 when the document has no such container.
func (d *Document) Mount(node *vdom.VNode, containerID string) error {
	id := strings.TrimPrefix(containerID, "#")
	container := d.body.FindByID(id)
	if id == "" || container == nil {
		return errors.New("E001").
			WithDetail(fmt.Sprintf("No element with id %q exists in the document.", id)).
			WithSuggestion("Create the container before mounting, or use RenderRoot with the default root container.")
	}
	container.Children = container.Children[:0]
	if node != nil {
		container.Children = append(container.Children, node)
	}
	return nil
}

// RenderRoot mounts node into the DefaultRootID container.
func (d *Document) RenderRoot(node *vdom.VNode) error {
	return d.Mount(node, DefaultRootID)
}

// RenderDocument writes the complete HTML document to w.
func (r *Renderer) RenderDocument(w io.Writer, d *Document) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<html lang=\"%s\">\n", escapeAttr(d.lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, d); err != nil {
		return err
	}
	if err := r.renderNode(w, d.body, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</html>\n")
	return err
}

// String renders the document with a default renderer.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderDocument(&buf, d); err != nil {
		return ""
	}
	return buf.String()
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, d *Document) error {
	var b strings.Builder
	b.WriteString("<head>\n")
	b.WriteString(`  <meta charset="utf-8">` + "\n")
	b.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	if d.title != "" {
		fmt.Fprintf(&b, "  <title>%s</title>\n", escapeHTML(d.title))
	}
	for _, meta := range d.meta {
		b.WriteString("  <meta")
		if meta.Name != "" {
			fmt.Fprintf(&b, ` name="%s"`, escapeAttr(meta.Name))
		}
		if meta.Property != "" {
			fmt.Fprintf(&b, ` property="%s"`, escapeAttr(meta.Property))
		}
		fmt.Fprintf(&b, ` content="%s">`+"\n", escapeAttr(meta.Content))
	}
	for _, href := range d.styleSheets {
		fmt.Fprintf(&b, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for _, n := range d.head {
		if _, err := io.WriteString(w, "  "); err != nil {
			return err
		}
		if err := r.renderNode(w, n, 0); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

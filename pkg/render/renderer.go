package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/bloxi-go/bloxi/internal/errors"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth)
	case vdom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return errors.New("E002").WithDetail(fmt.Sprintf("node kind %d is not renderable", node.Kind))
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if rawHTML, ok := node.Props["dangerouslySetInnerHTML"].(string); ok {
		if _, err := io.WriteString(w, rawHTML); err != nil {
			return err
		}
	} else {
		hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			io.WriteString(w, "\n")
		}

		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}

		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent renders a component by rendering its output VNode.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth int) error {
	if node.Comp == nil {
		return nil
	}
	return r.renderNode(w, node.Comp.Render(), depth)
}

// renderRaw renders raw HTML without escaping.
func (r *Renderer) renderRaw(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, node.Text)
	return err
}

// renderAttributes renders all attributes for an element in key order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Internal props (display names and the like)
		if strings.HasPrefix(key, "_") {
			continue
		}
		// Handlers and other callables have no HTML form
		if isFunc(value) {
			continue
		}

		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		case "dangerouslySetInnerHTML", "key", "children":
			continue
		}

		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
			return err
		}
	}
	return nil
}

// isFunc returns true if the value is a function, nil or not.
func isFunc(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

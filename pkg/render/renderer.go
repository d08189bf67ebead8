package render

import (
	"bytes"
	"io"
	"sort"

	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/vdom"
)

// Config configures the HTML serializer.
type Config struct {
	// Pretty enables pretty-printed output with indentation. Development
	// only; it increases output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes in-memory host trees to canonical HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString serializes a host node to an HTML string.
func (r *Renderer) ToString(node *host.MemoryNode) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a host node's HTML to the given writer.
func (r *Renderer) ToWriter(w io.Writer, node *host.MemoryNode) error {
	return r.renderNode(w, node, 0)
}

// ChildrenToString serializes only the children of a node, in order. This
// is the canonical form of a rendered container: the container element
// itself is not part of the output.
func (r *Renderer) ChildrenToString(container *host.MemoryNode) (string, error) {
	var buf bytes.Buffer
	for _, child := range container.Kids {
		if err := r.renderNode(&buf, child, 0); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// renderNode dispatches on node shape.
func (r *Renderer) renderNode(w io.Writer, node *host.MemoryNode, depth int) error {
	if node == nil {
		return nil
	}
	if node.IsText {
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	}
	return r.renderElement(w, node, depth)
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *host.MemoryNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if vdom.IsVoidElement(node.Tag) {
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

	hasBlockChildren := r.config.Pretty && len(node.Kids) > 0 && !allText(node.Kids)
	if hasBlockChildren {
		io.WriteString(w, "\n")
	}

	for _, child := range node.Kids {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if hasBlockChildren {
		r.writeIndent(w, depth)
	}
	if _, err := io.WriteString(w, "</"+node.Tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderAttributes writes attributes sorted by key for deterministic
// output. An empty value renders as a valueless (boolean) attribute.
func (r *Renderer) renderAttributes(w io.Writer, node *host.MemoryNode) error {
	if len(node.Attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Attrs))
	for key := range node.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Attrs[key]
		if value == "" {
			if _, err := io.WriteString(w, " "+key); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, " "+key+`="`+escapeAttr(value)+`"`); err != nil {
			return err
		}
	}
	return nil
}

// allText reports whether every child is a text node; pretty mode keeps
// text-only content inline.
func allText(kids []*host.MemoryNode) bool {
	for _, kid := range kids {
		if !kid.IsText {
			return false
		}
	}
	return true
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

// ToString serializes a host node with the default configuration.
func ToString(node *host.MemoryNode) (string, error) {
	return NewRenderer(Config{}).ToString(node)
}

// ChildrenToString serializes a container's children with the default
// configuration.
func ChildrenToString(container *host.MemoryNode) (string, error) {
	return NewRenderer(Config{}).ChildrenToString(container)
}

package vdom

import "github.com/loom-ui/loom/internal/errors"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode, or string
// (coerced to a text leaf). Anything else panics with a node error; a
// malformed tree fails at construction, never during diffing.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			node.applyAttr(v)

		case []Attr:
			for _, a := range v {
				node.applyAttr(a)
			}

		case Props:
			for key, value := range v {
				node.applyAttr(Attr{Key: key, Value: value})
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for a text leaf
			node.Children = append(node.Children, Text(v))

		default:
			panic(errors.New("E040").WithDetail("unsupported argument %T for <%s>", arg, tag))
		}
	}

	return node
}

// applyAttr stores an attribute, routing the reserved "key" attribute to
// the Key field.
func (v *VNode) applyAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
			return
		}
	}
	v.Props[a.Key] = a.Value
}

// Text creates a text leaf.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Common element factories.

func Div(args ...any) *VNode     { return El("div", args...) }
func Span(args ...any) *VNode    { return El("span", args...) }
func P(args ...any) *VNode       { return El("p", args...) }
func H1(args ...any) *VNode      { return El("h1", args...) }
func H2(args ...any) *VNode      { return El("h2", args...) }
func H3(args ...any) *VNode      { return El("h3", args...) }
func Ul(args ...any) *VNode      { return El("ul", args...) }
func Ol(args ...any) *VNode      { return El("ol", args...) }
func Li(args ...any) *VNode      { return El("li", args...) }
func A(args ...any) *VNode       { return El("a", args...) }
func Button(args ...any) *VNode  { return El("button", args...) }
func Input(args ...any) *VNode   { return El("input", args...) }
func Form(args ...any) *VNode    { return El("form", args...) }
func Label(args ...any) *VNode   { return El("label", args...) }
func Img(args ...any) *VNode     { return El("img", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Header(args ...any) *VNode  { return El("header", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }
func Main(args ...any) *VNode    { return El("main", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }
func Pre(args ...any) *VNode     { return El("pre", args...) }
func Code(args ...any) *VNode    { return El("code", args...) }
func Br(args ...any) *VNode      { return El("br", args...) }
func Hr(args ...any) *VNode      { return El("hr", args...) }

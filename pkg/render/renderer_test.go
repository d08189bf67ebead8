package render

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/host"
)

func el(tag string, attrs map[string]string, kids ...*host.MemoryNode) *host.MemoryNode {
	doc := host.NewMemory()
	n := doc.CreateNode(tag).(*host.MemoryNode)
	for k, v := range attrs {
		n.SetAttribute(k, v)
	}
	for _, kid := range kids {
		n.AppendChild(kid)
	}
	return n
}

func text(s string) *host.MemoryNode {
	return host.NewMemory().CreateTextNode(s).(*host.MemoryNode)
}

func TestToStringSimpleElement(t *testing.T) {
	node := el("div", map[string]string{"class": "lol"}, text("1"))

	html, err := ToString(node)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if html != `<div class="lol">1</div>` {
		t.Errorf("html = %q", html)
	}
}

func TestToStringNested(t *testing.T) {
	node := el("ul", nil,
		el("li", nil, text("a")),
		el("li", nil, text("b")),
	)

	html, _ := ToString(node)
	if html != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("html = %q", html)
	}
}

func TestAttributesSorted(t *testing.T) {
	node := el("input", map[string]string{"type": "text", "id": "q", "name": "q"})

	html, _ := ToString(node)
	if html != `<input id="q" name="q" type="text">` {
		t.Errorf("html = %q", html)
	}
}

func TestVoidElements(t *testing.T) {
	html, _ := ToString(el("br", nil))
	if html != "<br>" {
		t.Errorf("html = %q", html)
	}

	// Even with attributes, no closing tag.
	html, _ = ToString(el("img", map[string]string{"src": "/a.png"}))
	if html != `<img src="/a.png">` {
		t.Errorf("html = %q", html)
	}
}

func TestValuelessAttribute(t *testing.T) {
	node := el("input", map[string]string{"disabled": "", "type": "text"})

	html, _ := ToString(node)
	if html != `<input disabled type="text">` {
		t.Errorf("html = %q", html)
	}
}

func TestTextEscaping(t *testing.T) {
	html, _ := ToString(el("p", nil, text(`<b>&"'</b>`)))
	want := "<p>&lt;b&gt;&amp;&quot;&#39;&lt;/b&gt;</p>"
	if html != want {
		t.Errorf("html = %q, want %q", html, want)
	}
}

func TestAttrEscaping(t *testing.T) {
	html, _ := ToString(el("div", map[string]string{"title": "a\"b\nc"}))
	if !strings.Contains(html, `title="a&quot;b&#10;c"`) {
		t.Errorf("html = %q", html)
	}
}

func TestChildrenToString(t *testing.T) {
	doc := host.NewMemory()
	container := doc.NewContainer("root")
	container.AppendChild(el("p", nil, text("a")))
	container.AppendChild(el("p", nil, text("b")))

	html, err := ChildrenToString(container)
	if err != nil {
		t.Fatalf("ChildrenToString: %v", err)
	}
	if html != "<p>a</p><p>b</p>" {
		t.Errorf("html = %q", html)
	}
}

func TestNilNode(t *testing.T) {
	html, err := ToString(nil)
	if err != nil || html != "" {
		t.Errorf("got %q, %v", html, err)
	}
}

func TestPrettyMode(t *testing.T) {
	r := NewRenderer(Config{Pretty: true})
	node := el("div", nil,
		el("p", nil, text("x")),
	)

	html, _ := r.ToString(node)
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output has no newlines: %q", html)
	}
	if !strings.Contains(html, "  <p>") {
		t.Errorf("pretty output not indented: %q", html)
	}
}

func TestPrettyKeepsTextInline(t *testing.T) {
	r := NewRenderer(Config{Pretty: true})
	html, _ := r.ToString(el("p", nil, text("hello")))
	if !strings.Contains(html, "<p>hello</p>") {
		t.Errorf("text content should stay inline: %q", html)
	}
}

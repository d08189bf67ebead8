package loom

import (
	"testing"
)

func TestRootAPIRendersPage(t *testing.T) {
	row := Component(func(data any, args ...any) *VNode {
		return Li(data.(string))
	}, Options{KeyFn: func(data any) string { return data.(string) }})

	doc := NewMemoryDocument()
	container := doc.NewContainer("root")
	engine := NewEngine(doc)

	page := Div(Class("page"),
		H1("Hello"),
		Ul(row("a"), row("b")),
	)
	if err := engine.Render(page, container); err != nil {
		t.Fatalf("Render: %v", err)
	}

	html, err := NewRenderer(RenderConfig{}).ChildrenToString(container)
	if err != nil {
		t.Fatalf("ChildrenToString: %v", err)
	}
	want := `<div class="page"><h1>Hello</h1><ul><li>a</li><li>b</li></ul></div>`
	if html != want {
		t.Errorf("html = %q, want %q", html, want)
	}
}

func TestRootAPIPatchesInPlace(t *testing.T) {
	doc := NewMemoryDocument()
	container := doc.NewContainer("root")
	engine := NewEngine(doc)

	if err := engine.Render(Div(P("one")), container); err != nil {
		t.Fatalf("first render: %v", err)
	}
	first := container.Kids[0]

	if err := engine.Render(Div(P("two")), container); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if container.Kids[0] != first {
		t.Error("element was recreated instead of patched")
	}
}

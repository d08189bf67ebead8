package reconcile

import (
	"testing"

	looerrors "github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vdom"
)

// setup returns an engine, its document, and a fresh container.
func setup(t *testing.T) (*Engine, *host.Memory, *host.MemoryNode) {
	t.Helper()
	doc := host.NewMemory()
	return New(doc), doc, doc.NewContainer("root")
}

// serialize returns the canonical HTML of the container's content.
func serialize(t *testing.T, container *host.MemoryNode) string {
	t.Helper()
	html, err := render.ChildrenToString(container)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return html
}

func mustRender(t *testing.T, e *Engine, n *vdom.VNode, c *host.MemoryNode) {
	t.Helper()
	if err := e.Render(n, c); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRenderSimpleElement(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.El("div", vdom.Class("lol"), "1"), container)

	if got := serialize(t, container); got != `<div class="lol">1</div>` {
		t.Errorf("html = %q", got)
	}
}

func TestRenderNilArguments(t *testing.T) {
	e, _, container := setup(t)

	if err := e.Render(nil, container); err == nil {
		t.Error("nil vnode should error")
	}
	if err := e.Render(vdom.Div(), nil); err == nil {
		t.Error("nil container should error")
	}
}

func TestPatchTextOnly(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.P("Hello"), container)
	textNode := container.Kids[0].Kids[0]

	mustRender(t, e, vdom.P("World"), container)

	if got := serialize(t, container); got != "<p>World</p>" {
		t.Errorf("html = %q", got)
	}
	// Same host text node, content replaced in place.
	if container.Kids[0].Kids[0] != textNode {
		t.Error("text node was replaced instead of patched")
	}
}

func TestPatchAttributes(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.Div(vdom.Class("a"), vdom.ID("x")), container)
	div := container.Kids[0]

	mustRender(t, e, vdom.Div(vdom.Class("b"), vdom.Set("title", "t")), container)

	if container.Kids[0] != div {
		t.Fatal("element replaced instead of patched")
	}
	if v, _ := div.Attr("class"); v != "b" {
		t.Errorf("class = %q", v)
	}
	if _, ok := div.Attr("id"); ok {
		t.Error("id should have been removed")
	}
	if v, _ := div.Attr("title"); v != "t" {
		t.Errorf("title = %q", v)
	}
}

func TestBooleanAttributes(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.Input(vdom.Type("text"), vdom.Disabled(true)), container)
	if got := serialize(t, container); got != `<input disabled type="text">` {
		t.Errorf("html = %q", got)
	}

	mustRender(t, e, vdom.Input(vdom.Type("text"), vdom.Disabled(false)), container)
	if got := serialize(t, container); got != `<input type="text">` {
		t.Errorf("html = %q", got)
	}
}

func TestReplaceOnTagChange(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.P("x"), container)
	mustRender(t, e, vdom.H1("x"), container)

	if got := serialize(t, container); got != "<h1>x</h1>" {
		t.Errorf("html = %q", got)
	}
	if len(container.Kids) != 1 {
		t.Errorf("container has %d children, want 1", len(container.Kids))
	}
}

func TestReplaceOnKindChange(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.Div(vdom.Text("just text")), container)
	mustRender(t, e, vdom.Div(vdom.Span("now a span")), container)

	if got := serialize(t, container); got != "<div><span>now a span</span></div>" {
		t.Errorf("html = %q", got)
	}
}

func TestChildInsertAndRemoveAtTail(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.Ul(vdom.Li("a")), container)
	mustRender(t, e, vdom.Ul(vdom.Li("a"), vdom.Li("b")), container)

	if got := serialize(t, container); got != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("html = %q", got)
	}

	mustRender(t, e, vdom.Ul(vdom.Li("a")), container)
	if got := serialize(t, container); got != "<ul><li>a</li></ul>" {
		t.Errorf("html = %q", got)
	}
}

func TestRefCallback(t *testing.T) {
	e, _, container := setup(t)

	var got []host.Node
	ref := func(n host.Node) { got = append(got, n) }

	mustRender(t, e, vdom.Div(vdom.Span(vdom.Ref(ref))), container)

	if len(got) != 1 || got[0] == nil {
		t.Fatalf("ref calls = %v", got)
	}

	// Replacing the span invokes the ref with nil.
	mustRender(t, e, vdom.Div(vdom.P("replaced")), container)

	if len(got) != 2 || got[1] != nil {
		t.Fatalf("ref calls after removal = %v", got)
	}
}

func TestStats(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.Div(vdom.Class("a"), vdom.P("x")), container)
	st := e.Stats()
	if st.Nodes == 0 || st.Patches == 0 {
		t.Errorf("stats = %+v, want non-zero nodes and patches", st)
	}

	// An identical second pass applies no host mutations.
	mustRender(t, e, vdom.Div(vdom.Class("a"), vdom.P("x")), container)
	if st := e.Stats(); st.Patches != 0 {
		t.Errorf("no-op pass applied %d patches", st.Patches)
	}
}

func TestContainersAreIndependent(t *testing.T) {
	e, doc, containerA := setup(t)
	containerB := doc.NewContainer("root")

	mustRender(t, e, vdom.P("a"), containerA)
	mustRender(t, e, vdom.P("b"), containerB)

	if got := serialize(t, containerA); got != "<p>a</p>" {
		t.Errorf("A = %q", got)
	}
	if got := serialize(t, containerB); got != "<p>b</p>" {
		t.Errorf("B = %q", got)
	}
}

func TestReentrantRenderPanics(t *testing.T) {
	e, _, container := setup(t)

	boom := vdom.Component(func(data any, args ...any) *vdom.VNode {
		return vdom.Div()
	}, vdom.Options{
		OnMount: func(node host.Node, data any, args ...any) {
			e.Render(vdom.Div(), container)
		},
	})

	defer func() {
		r := recover()
		le, ok := r.(*looerrors.LoomError)
		if !ok || le.Code != "E002" {
			t.Fatalf("panic = %v, want LoomError E002", r)
		}
	}()

	e.Render(boom("x"), container)
}

func TestRenderPanicInvalidatesContainer(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.P("ok"), container)

	angry := vdom.Component(func(data any, args ...any) *vdom.VNode {
		panic("render exploded")
	}, vdom.Options{})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("render panic should propagate")
			}
		}()
		e.Render(vdom.Div(angry("x")), container)
	}()

	// The container is poisoned until Unmount.
	if err := e.Render(vdom.P("retry"), container); err == nil {
		t.Fatal("Render after an abandoned pass should fail")
	}

	e.Unmount(container)
	mustRender(t, e, vdom.P("fresh"), container)
	if got := serialize(t, container); got != "<p>fresh</p>" {
		t.Errorf("html = %q", got)
	}
}

func TestUnmountClearsAbandonedPassDebris(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.P("ok"), container)

	// The replacement subtree is inserted before its component child
	// panics, leaving a host node the retained maps never recorded.
	angry := vdom.Component(func(data any, args ...any) *vdom.VNode {
		panic("render exploded")
	}, vdom.Options{})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("render panic should propagate")
			}
		}()
		e.Render(vdom.Div(angry("x")), container)
	}()

	e.Unmount(container)
	if len(container.Kids) != 0 {
		t.Fatalf("container not cleared after Unmount: %q", serialize(t, container))
	}

	mustRender(t, e, vdom.P("fresh"), container)
	if got := serialize(t, container); got != "<p>fresh</p>" {
		t.Errorf("html = %q", got)
	}
}

func TestRefAddedOnUpdate(t *testing.T) {
	e, _, container := setup(t)

	mustRender(t, e, vdom.Div(vdom.Span()), container)

	var got []host.Node
	ref := func(n host.Node) { got = append(got, n) }
	mustRender(t, e, vdom.Div(vdom.Span(vdom.Ref(ref))), container)

	if len(got) != 1 || got[0] == nil {
		t.Fatalf("ref calls = %v, want the host node once", got)
	}
	if got[0] != container.Kids[0].Kids[0] {
		t.Error("ref received the wrong node")
	}
}

func TestRefReplacedOnUpdate(t *testing.T) {
	e, _, container := setup(t)

	var first, second []host.Node
	refA := func(n host.Node) { first = append(first, n) }
	refB := func(n host.Node) { second = append(second, n) }

	mustRender(t, e, vdom.Span(vdom.Ref(refA)), container)
	mustRender(t, e, vdom.Span(vdom.Ref(refB)), container)

	// The outgoing ref is released with nil, the incoming one gets the node.
	if len(first) != 2 || first[1] != nil {
		t.Errorf("old ref calls = %v, want node then nil", first)
	}
	if len(second) != 1 || second[0] == nil {
		t.Errorf("new ref calls = %v, want the host node once", second)
	}

	// An unchanged ref does not re-fire on the next pass.
	mustRender(t, e, vdom.Span(vdom.Ref(refB)), container)
	if len(second) != 1 {
		t.Errorf("unchanged ref re-fired: %v", second)
	}
}

func TestUnmountFiresHooksAndClears(t *testing.T) {
	e, _, container := setup(t)

	var unmounts []any
	comp := vdom.Component(func(data any, args ...any) *vdom.VNode {
		return vdom.P(data.(string))
	}, vdom.Options{
		OnUnmount: func(node host.Node, data any, args ...any) {
			unmounts = append(unmounts, data)
		},
	})

	mustRender(t, e, vdom.Div(comp("a"), comp("b")), container)
	e.Unmount(container)

	if len(container.Kids) != 0 {
		t.Error("container not cleared")
	}
	if len(unmounts) != 2 {
		t.Fatalf("onUnmount fired %d times, want 2", len(unmounts))
	}

	// Unmounting again is a no-op.
	e.Unmount(container)
	if len(unmounts) != 2 {
		t.Error("second Unmount re-fired hooks")
	}
}

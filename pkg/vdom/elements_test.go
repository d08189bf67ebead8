package vdom

import (
	"testing"

	looerrors "github.com/loom-ui/loom/internal/errors"
)

func TestElBasic(t *testing.T) {
	node := El("div", Class("card"), ID("main"))

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("got kind=%v tag=%q", node.Kind, node.Tag)
	}
	if node.Props["class"] != "card" || node.Props["id"] != "main" {
		t.Errorf("Props = %v", node.Props)
	}
}

func TestElStringChildCoercesToText(t *testing.T) {
	node := El("p", "hello")

	if len(node.Children) != 1 {
		t.Fatalf("Children = %d, want 1", len(node.Children))
	}
	child := node.Children[0]
	if child.Kind != KindText || child.Text != "hello" {
		t.Errorf("child = %+v", child)
	}
}

func TestElNilArgsSkipped(t *testing.T) {
	node := El("div", nil, If(false, Span()), "x")

	if len(node.Children) != 1 {
		t.Errorf("Children = %d, want 1", len(node.Children))
	}
}

func TestElChildSlices(t *testing.T) {
	kids := []*VNode{Li("a"), nil, Li("b")}
	node := Ul(kids)

	if len(node.Children) != 2 {
		t.Errorf("Children = %d, want 2 (nil dropped)", len(node.Children))
	}
}

func TestElAttrSliceAndProps(t *testing.T) {
	node := El("input",
		[]Attr{Type("text"), Placeholder("name")},
		Props{"autofocus": true},
	)

	if node.Props["type"] != "text" || node.Props["placeholder"] != "name" {
		t.Errorf("Props = %v", node.Props)
	}
	if node.Props["autofocus"] != true {
		t.Errorf("Props = %v", node.Props)
	}
}

func TestElKeyAttrSetsKeyField(t *testing.T) {
	node := Li(Key("item-1"), "text")

	if node.Key != "item-1" {
		t.Errorf("Key = %q, want item-1", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key should not be stored as a regular prop")
	}
}

func TestElInvalidArgPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for invalid argument")
		}
		le, ok := r.(*looerrors.LoomError)
		if !ok {
			t.Fatalf("panic value = %T, want *LoomError", r)
		}
		if le.Code != "E040" {
			t.Errorf("Code = %q, want E040", le.Code)
		}
	}()

	El("div", 42)
}

func TestText(t *testing.T) {
	node := Text("hi")
	if node.Kind != KindText || node.Text != "hi" {
		t.Errorf("got %+v", node)
	}

	formatted := Textf("%d items", 3)
	if formatted.Text != "3 items" {
		t.Errorf("Textf = %q", formatted.Text)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") || !IsVoidElement("input") {
		t.Error("br and input are void")
	}
	if IsVoidElement("div") {
		t.Error("div is not void")
	}
}

func TestMapHelper(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Map(items, func(s string, i int) *VNode {
		if s == "b" {
			return nil
		}
		return Li(s)
	})

	if len(nodes) != 2 {
		t.Errorf("Map = %d nodes, want 2", len(nodes))
	}
}

func TestRepeatHelper(t *testing.T) {
	nodes := Repeat(3, func(i int) *VNode { return Textf("%d", i) })
	if len(nodes) != 3 || nodes[2].Text != "2" {
		t.Errorf("Repeat = %v", nodes)
	}
	if Repeat(0, func(i int) *VNode { return nil }) != nil {
		t.Error("Repeat(0) should be nil")
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindComponent, "Component"},
		{VKind(99), "Unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

package host

import "testing"

func TestCreateNodes(t *testing.T) {
	doc := NewMemory()

	el := doc.CreateNode("div").(*MemoryNode)
	if el.Tag != "div" || el.IsText {
		t.Errorf("got %+v, want element div", el)
	}

	txt := doc.CreateTextNode("hi").(*MemoryNode)
	if !txt.IsText || txt.Text != "hi" {
		t.Errorf("got %+v, want text 'hi'", txt)
	}
}

func TestAppendChild(t *testing.T) {
	doc := NewMemory()
	parent := doc.NewContainer("ul")
	a := doc.CreateNode("li").(*MemoryNode)
	b := doc.CreateNode("li").(*MemoryNode)

	parent.AppendChild(a)
	parent.AppendChild(b)

	if len(parent.Kids) != 2 || parent.Kids[0] != a || parent.Kids[1] != b {
		t.Fatalf("Kids = %v", parent.Kids)
	}
	if a.Parent() != parent {
		t.Error("child parent not set")
	}
}

func TestInsertBefore(t *testing.T) {
	doc := NewMemory()
	parent := doc.NewContainer("ul")
	a := doc.CreateNode("li").(*MemoryNode)
	b := doc.CreateNode("li").(*MemoryNode)
	c := doc.CreateNode("li").(*MemoryNode)

	parent.AppendChild(a)
	parent.AppendChild(c)
	parent.InsertBefore(b, c)

	want := []*MemoryNode{a, b, c}
	for i, kid := range parent.Kids {
		if kid != want[i] {
			t.Fatalf("Kids[%d] wrong order", i)
		}
	}
}

func TestInsertBeforeNilRefAppends(t *testing.T) {
	doc := NewMemory()
	parent := doc.NewContainer("div")
	a := doc.CreateNode("span").(*MemoryNode)

	parent.InsertBefore(a, nil)

	if len(parent.Kids) != 1 || parent.Kids[0] != a {
		t.Fatalf("Kids = %v", parent.Kids)
	}
}

func TestInsertReattaches(t *testing.T) {
	doc := NewMemory()
	p1 := doc.NewContainer("div")
	p2 := doc.NewContainer("div")
	a := doc.CreateNode("span").(*MemoryNode)

	p1.AppendChild(a)
	p2.AppendChild(a)

	if len(p1.Kids) != 0 {
		t.Error("node still attached to old parent")
	}
	if a.Parent() != p2 {
		t.Error("node not attached to new parent")
	}
}

func TestMoveWithinParent(t *testing.T) {
	doc := NewMemory()
	parent := doc.NewContainer("ul")
	a := doc.CreateNode("li").(*MemoryNode)
	b := doc.CreateNode("li").(*MemoryNode)

	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.InsertBefore(b, a) // move b in front of a

	if parent.Kids[0] != b || parent.Kids[1] != a {
		t.Fatalf("move failed: %v", parent.Kids)
	}
}

func TestRemoveChild(t *testing.T) {
	doc := NewMemory()
	parent := doc.NewContainer("div")
	a := doc.CreateNode("span").(*MemoryNode)
	parent.AppendChild(a)

	parent.RemoveChild(a)

	if len(parent.Kids) != 0 || a.Parent() != nil {
		t.Error("child not detached")
	}

	// Removing again is a no-op.
	parent.RemoveChild(a)
}

func TestAttributes(t *testing.T) {
	doc := NewMemory()
	el := doc.CreateNode("input").(*MemoryNode)

	el.SetAttribute("type", "text")
	if v, ok := el.Attr("type"); !ok || v != "text" {
		t.Errorf("Attr = %q, %v", v, ok)
	}

	el.RemoveAttribute("type")
	if _, ok := el.Attr("type"); ok {
		t.Error("attribute not removed")
	}

	// Removing an absent key is a no-op.
	el.RemoveAttribute("missing")
}

func TestIndex(t *testing.T) {
	doc := NewMemory()
	parent := doc.NewContainer("ul")
	a := doc.CreateNode("li").(*MemoryNode)
	b := doc.CreateNode("li").(*MemoryNode)
	parent.AppendChild(a)
	parent.AppendChild(b)

	if a.Index() != 0 || b.Index() != 1 {
		t.Errorf("Index = %d, %d", a.Index(), b.Index())
	}

	detached := doc.CreateNode("li").(*MemoryNode)
	if detached.Index() != -1 {
		t.Errorf("detached Index = %d, want -1", detached.Index())
	}
}

func TestSetTextContent(t *testing.T) {
	doc := NewMemory()
	txt := doc.CreateTextNode("old").(*MemoryNode)
	txt.SetTextContent("new")
	if txt.Text != "new" {
		t.Errorf("Text = %q", txt.Text)
	}
}

package server

import (
	"testing"

	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/reconcile"
	"github.com/loom-ui/loom/pkg/vdom"
)

func ops(batch *protocol.PatchBatch) []protocol.PatchOp {
	out := make([]protocol.PatchOp, len(batch.Patches))
	for i, p := range batch.Patches {
		out[i] = p.Op
	}
	return out
}

func TestRemoteDocumentRecordsMount(t *testing.T) {
	doc := NewRemoteDocument()
	container := doc.NewContainer("root")
	engine := reconcile.New(doc)

	if err := engine.Render(vdom.Div(vdom.Class("card"), vdom.P("hi")), container); err != nil {
		t.Fatal(err)
	}

	batch := doc.Flush(1)
	want := []protocol.PatchOp{
		protocol.OpCreateElement, // div
		protocol.OpSetAttr,       // class
		protocol.OpInsertBefore,  // div into container
		protocol.OpCreateElement, // p
		protocol.OpInsertBefore,  // p into div
		protocol.OpCreateText,    // "hi"
		protocol.OpInsertBefore,  // text into p
	}
	got := ops(batch)
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if batch.Seq != 1 {
		t.Errorf("seq = %d", batch.Seq)
	}
	if doc.Pending() != 0 {
		t.Error("flush did not clear pending patches")
	}
}

func TestRemoteDocumentPatchOnlyUpdate(t *testing.T) {
	doc := NewRemoteDocument()
	container := doc.NewContainer("root")
	engine := reconcile.New(doc)

	if err := engine.Render(vdom.P("before"), container); err != nil {
		t.Fatal(err)
	}
	doc.Flush(1)

	if err := engine.Render(vdom.P("after"), container); err != nil {
		t.Fatal(err)
	}
	batch := doc.Flush(2)

	if len(batch.Patches) != 1 || batch.Patches[0].Op != protocol.OpSetText {
		t.Fatalf("patches = %+v, want a single SetText", batch.Patches)
	}
	if batch.Patches[0].Value != "after" {
		t.Errorf("text = %q", batch.Patches[0].Value)
	}
}

func TestRemoteDocumentReorderUsesRef(t *testing.T) {
	doc := NewRemoteDocument()
	container := doc.NewContainer("root")
	engine := reconcile.New(doc)

	li := func(k string) *vdom.VNode { return vdom.Li(vdom.Key(k), k) }

	if err := engine.Render(vdom.Ul(li("a"), li("b")), container); err != nil {
		t.Fatal(err)
	}
	doc.Flush(1)

	if err := engine.Render(vdom.Ul(li("b"), li("a")), container); err != nil {
		t.Fatal(err)
	}
	batch := doc.Flush(2)

	if len(batch.Patches) != 1 || batch.Patches[0].Op != protocol.OpInsertBefore {
		t.Fatalf("patches = %+v, want a single InsertBefore", batch.Patches)
	}
	if batch.Patches[0].Ref == 0 {
		t.Error("reorder should name a reference sibling")
	}
}

func TestSnapshotMirrorsTree(t *testing.T) {
	doc := NewRemoteDocument()
	container := doc.NewContainer("root")
	engine := reconcile.New(doc)

	if err := engine.Render(vdom.Div(vdom.Class("z"), vdom.ID("a"), vdom.Span("x")), container); err != nil {
		t.Fatal(err)
	}

	snap := container.Snapshot()
	if len(snap.Kids) != 1 {
		t.Fatalf("container kids = %d", len(snap.Kids))
	}
	div := snap.Kids[0]
	if div.Tag != "div" {
		t.Errorf("tag = %q", div.Tag)
	}
	// Attrs come out sorted by key.
	if len(div.Attrs) != 2 || div.Attrs[0].Key != "class" || div.Attrs[1].Key != "id" {
		t.Errorf("attrs = %+v", div.Attrs)
	}
	if len(div.Kids) != 1 || div.Kids[0].Tag != "span" {
		t.Errorf("kids = %+v", div.Kids)
	}
	text := div.Kids[0].Kids[0]
	if !text.IsText || text.Text != "x" {
		t.Errorf("text node = %+v", text)
	}

	// The snapshot round-trips through the wire format intact.
	decoded, err := protocol.DecodeWireNode(protocol.EncodeWireNode(snap))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Kids[0].Tag != "div" {
		t.Error("decoded snapshot lost structure")
	}
}

func TestRemoteNodeIDsAreStable(t *testing.T) {
	doc := NewRemoteDocument()
	container := doc.NewContainer("root")
	engine := reconcile.New(doc)

	if err := engine.Render(vdom.P("x"), container); err != nil {
		t.Fatal(err)
	}
	batch := doc.Flush(1)

	createID := batch.Patches[0].Target

	if err := engine.Render(vdom.P("y"), container); err != nil {
		t.Fatal(err)
	}
	batch = doc.Flush(2)

	// The patched text node belongs to the same element created earlier;
	// no new IDs appear.
	for _, p := range batch.Patches {
		if p.Op == protocol.OpCreateElement || p.Op == protocol.OpCreateText {
			t.Errorf("unexpected create in update batch: %+v", p)
		}
	}
	if createID == 0 {
		t.Error("created node should have a non-zero ID")
	}
}

// Package render serializes in-memory host trees to HTML.
//
// The serializer consumes fully-rendered host.MemoryNode trees — it never
// looks at virtual nodes, so anything the engine materialized, including
// memoized component output, serializes byte-for-byte identically across
// passes. Output is canonical: attributes sort by key, text and attribute
// values are escaped, and void elements render without closing tags.
//
//	doc := host.NewMemory()
//	container := doc.NewContainer("div")
//	engine.Render(tree, container)
//	html, err := render.ChildrenToString(container)
//
// Pretty mode indents nested elements and is meant for development output
// only.
package render

// Package reconcile is Loom's diff/patch engine.
//
// An Engine retains, per container, the previously rendered virtual tree
// and the component instance records, and turns each Render call into the
// minimal host mutations that transform the old tree into the new one:
//
//	doc := host.NewMemory()
//	engine := reconcile.New(doc)
//	container := doc.NewContainer("div")
//
//	engine.Render(view(state), container)   // mounts
//	engine.Render(view(state2), container)  // diffs and patches
//
// # Identity
//
// Children match across renders by key when present (a KeyFn-derived key
// wins over an explicit key attribute) and strictly by index otherwise.
// Unkeyed children therefore never move; inserting an unkeyed sibling
// shifts identity of everything after it, which is the documented
// trade-off — supply keys for stable identity under reordering. Duplicate
// sibling keys resolve first-occurrence-wins.
//
// # Memoization
//
// A component instance whose data is EqualInputs-equal to the previous
// render keeps its stored output verbatim: the render function is not
// invoked and no hooks fire, but the record's constant arguments are
// refreshed so later hook invocations observe current values.
//
// # Lifecycle
//
// Per instance: unmounted → mounted (onMount, then onRender), or
// unmounted → entering → mounted when inserted into an already-live parent
// with willEnter registered (didEnter fires when the completion token is
// invoked). Removal runs mounted → leaving → unmounted when willLeave is
// registered: the host node stays attached until the token fires, then
// didLeave and onUnmount run in that order. Completion tokens are
// idempotent and may never fire, in which case the node simply stays.
// Children always complete their hooks before the component that contains
// them.
//
// # Errors and reentrancy
//
// A panic from a render function or hook propagates to the Render caller,
// abandons the pass, and invalidates the container's retained state; later
// hooks in that pass do not fire, and further Render calls fail until
// Unmount resets the container. Calling Render for a container from inside
// one of its own in-progress passes panics with a structured error —
// updates must be deferred until the pass returns.
package reconcile

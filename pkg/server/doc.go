// Package server serves a Loom view over HTTP and streams incremental
// updates to WebSocket clients.
//
// A Server wraps a View function. Plain page loads at / get server-rendered
// HTML. Clients that connect to /ws each get their own session: a
// RemoteDocument the reconciliation engine renders into, whose host
// mutations are recorded as protocol patches instead of applied locally.
// On connect the session receives a full tree snapshot; every subsequent
// Update call re-renders the session and streams only the resulting patch
// batch.
//
//	srv := server.New(app.View, cfg)
//	go srv.ListenAndServe(ctx)
//	...
//	app.mutate()
//	srv.Update(ctx) // all connected clients receive the diff
//
// Prometheus metrics are exposed at /metrics and every render pass runs
// inside a "loom.render" trace span.
package server

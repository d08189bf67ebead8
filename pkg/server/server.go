package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/reconcile"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vdom"
)

// View produces the virtual tree for the current application state. It is
// called once per render pass per session, so it must be cheap to call and
// must not mutate shared state.
type View func() *vdom.VNode

// Server serves a Loom view over HTTP and streams patch updates to
// connected WebSocket clients. The initial page load gets server-rendered
// HTML; the /ws endpoint then delivers a binary tree snapshot followed by
// incremental patch batches whenever Update is called.
type Server struct {
	view     View
	cfg      *config.Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
	tracer   trace.Tracer

	mu       sync.Mutex
	sessions map[*Session]struct{}

	httpServer *http.Server
}

// New creates a server for the given view. cfg may be nil, in which case
// defaults apply.
func New(view View, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	return &Server{
		view:   view,
		cfg:    cfg,
		logger: slog.Default().With("component", "server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		tracer:   otel.Tracer("loom"),
		sessions: make(map[*Session]struct{}),
	}
}

// Handler returns the HTTP handler: the rendered page at /, the patch
// stream at /ws, Prometheus metrics at /metrics, and a health check at
// /healthz.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return r
}

// ListenAndServe starts the HTTP server on the configured address and
// blocks until ctx is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr())
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// handlePage serves the server-rendered HTML for a fresh page load.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc := host.NewMemory()
	container := doc.NewContainer("root")
	engine := reconcile.New(doc)

	if err := s.renderPass(r.Context(), engine, s.view(), container); err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	renderer := render.NewRenderer(render.Config{
		Pretty: s.cfg.Render.Pretty,
		Indent: s.cfg.Render.Indent,
	})
	html, err := renderer.ChildrenToString(container)
	if err != nil {
		http.Error(w, "serialize failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// handleWebSocket upgrades the connection, renders the session's first
// tree, sends the snapshot, and keeps the session registered until the
// connection drops.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(conn)

	if err := s.renderSession(r.Context(), sess); err != nil {
		s.logger.Error("initial render failed", "session", sess.ID, "error", err)
		conn.Close()
		return
	}
	// The create/insert patches of the first pass are folded into the
	// snapshot; drop them.
	sess.doc.Flush(0)
	snapshot := protocol.NewFrame(protocol.FrameTree,
		protocol.EncodeWireNode(sess.container.Snapshot()))

	s.mu.Lock()
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()
	serverMetrics().activeSessions.Inc()
	s.logger.Info("session connected", "session", sess.ID)

	go sess.writePump()
	sess.queue(snapshot)

	sess.readPump(func() {
		s.dropSession(sess)
	})
}

func (s *Server) dropSession(sess *Session) {
	s.mu.Lock()
	_, ok := s.sessions[sess]
	delete(s.sessions, sess)
	s.mu.Unlock()
	if !ok {
		return
	}
	sess.close()
	serverMetrics().activeSessions.Dec()
	s.logger.Info("session closed", "session", sess.ID)
}

// Update re-renders every connected session against the current view and
// streams the resulting patch batches. Call it whenever application state
// feeding the view has changed.
func (s *Server) Update(ctx context.Context) {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		if err := s.updateSession(ctx, sess); err != nil {
			s.logger.Error("session update failed", "session", sess.ID, "error", err)
			s.dropSession(sess)
		}
	}
}

func (s *Server) updateSession(ctx context.Context, sess *Session) error {
	sess.renderMu.Lock()
	defer sess.renderMu.Unlock()

	if err := s.renderPass(ctx, sess.engine, s.view(), sess.container); err != nil {
		return err
	}
	if sess.doc.Pending() == 0 {
		return nil
	}

	sess.seq++
	batch := sess.doc.Flush(sess.seq)
	serverMetrics().patchesSent.Add(float64(len(batch.Patches)))

	frame := protocol.NewFrame(protocol.FramePatches, protocol.EncodePatchBatch(batch))
	frame.Flags = protocol.FlagSequenced
	if !sess.queue(frame) {
		s.logger.Warn("send queue full, dropping batch", "session", sess.ID, "seq", sess.seq)
	}
	return nil
}

// renderSession runs the first pass for a new session.
func (s *Server) renderSession(ctx context.Context, sess *Session) error {
	sess.renderMu.Lock()
	defer sess.renderMu.Unlock()
	return s.renderPass(ctx, sess.engine, s.view(), sess.container)
}

// renderPass runs one traced, metered reconciliation pass.
func (s *Server) renderPass(ctx context.Context, engine *reconcile.Engine, node *vdom.VNode, container host.Node) error {
	_, span := s.tracer.Start(ctx, "loom.render")
	defer span.End()

	start := time.Now()
	err := engine.Render(node, container)
	duration := time.Since(start)

	m := serverMetrics()
	m.renderPasses.Inc()
	m.renderDuration.Observe(duration.Seconds())

	stats := engine.Stats()
	m.hooksFired.Add(float64(stats.Hooks))
	span.SetAttributes(
		attribute.Int("loom.nodes", stats.Nodes),
		attribute.Int("loom.patches", stats.Patches),
		attribute.Int("loom.hooks", stats.Hooks),
	)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"fixcheck/internal/config"
	"fixcheck/internal/domain"
	"fixcheck/internal/presenter"
	"fixcheck/internal/query"
)

// Server serves fixture pages and their live toggle sessions
type Server struct {
	cfg     *config.Config
	catalog *domain.Catalog
	links   presenter.Links
	logger  *zap.Logger
	http    *http.Server
}

// New creates a new Server
func New(cfg *config.Config, catalog *domain.Catalog, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		links:   presenter.Links{RepoURL: cfg.RepoURL},
		logger:  logger,
	}
	s.http = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes wrapped with request logging
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /fixtures/{slug}", s.handleFixture)
	mux.HandleFunc("GET /fixtures/{slug}/ws", s.handleSession)
	return s.logMiddleware(mux)
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	s.logger.Info("serving fixtures",
		zap.String("addr", s.http.Addr),
		zap.Int("fixtures", s.catalog.Len()))
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := page{
		title:    "Fixtures",
		rawQuery: r.URL.RawQuery,
		fixtures: s.catalog.Fixtures(),
	}

	target, err := query.TargetFromURL(r.URL.String())
	if err != nil {
		p.errMsg = err.Error()
		s.writePage(w, http.StatusBadRequest, p)
		return
	}
	p.target = target
	p.content = []*html.Node{fixtureIndex(p.fixtures, target)}
	s.writePage(w, http.StatusOK, p)
}

func (s *Server) handleFixture(w http.ResponseWriter, r *http.Request) {
	fixture, ok := s.catalog.Lookup(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	p := page{
		title:    fixture.Name,
		rawQuery: r.URL.RawQuery,
		fixtures: s.catalog.Fixtures(),
		current:  fixture.Slug,
	}

	// The target is read once per page load and fixed for its lifetime
	target, err := query.TargetFromURL(r.URL.String())
	if err != nil {
		s.logger.Warn("invalid target version", zap.String("query", r.URL.RawQuery), zap.Error(err))
		p.errMsg = err.Error()
		s.writePage(w, http.StatusBadRequest, p)
		return
	}
	p.target = target

	cases, err := buildPresenters(fixture, target, s.links)
	if err != nil {
		s.logger.Error("failed to mount fixture", zap.String("fixture", fixture.Slug), zap.Error(err))
		p.errMsg = err.Error()
		s.writePage(w, http.StatusInternalServerError, p)
		return
	}
	p.content = renderCases(cases)
	p.live = true
	s.writePage(w, http.StatusOK, p)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	fixture, ok := s.catalog.Lookup(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	target, err := query.TargetFromURL(r.URL.String())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := NewSession(fixture, target, s.links)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	log := s.logger.With(zap.String("fixture", fixture.Slug), zap.Stringer("target", target))
	log.Debug("session opened")

	ctx := r.Context()
	for {
		var msg toggleMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				log.Debug("session read ended", zap.Error(err))
			}
			break
		}

		update, err := session.Handle(msg)
		if err != nil {
			log.Warn("rejected session message", zap.String("id", msg.ID), zap.Error(err))
		} else {
			log.Debug("case toggled", zap.String("id", msg.ID), zap.Bool("complete", update.Complete))
		}
		if err := wsjson.Write(ctx, conn, update); err != nil {
			log.Debug("session write failed", zap.Error(err))
			break
		}
	}

	log.Debug("session closed")
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) writePage(w http.ResponseWriter, status int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := html.Render(w, p.render()); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}

// statusRecorder captures the response status for logging. It forwards
// Hijack so websocket upgrades still work through the middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

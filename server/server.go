// Package server exposes settings form and generated stylesheets over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"justify/common"
	"justify/config"
	"justify/form"
	"justify/store"
	"justify/styles"
	"justify/typography"
)

const (
	shutdownTimeout = 5 * time.Second
	authRealm       = "justify"
)

// Server serves settings page and stylesheets. Every request reads settings
// from the store anew.
type Server struct {
	cfg      *config.ServerConfig
	styles   *config.StylesConfig
	resolver *typography.Resolver
	nonces   *nonces
	log      *zap.Logger
}

func New(cfg *config.Config, st store.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("server")
	return &Server{
		cfg:      &cfg.Server,
		styles:   &cfg.Styles,
		resolver: typography.NewResolver(st, log),
		nonces:   newNonces(cfg.Server.NonceTTL),
		log:      log,
	}
}

// Handler returns request router. When credentials are configured every
// route requires them.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	if len(s.cfg.Auth.Username) > 0 {
		r.Use(middleware.BasicAuth(authRealm, map[string]string{s.cfg.Auth.Username: s.cfg.Auth.Password.Reveal()}))
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/settings", http.StatusFound)
	})
	r.Get("/settings", s.showSettings)
	r.Post("/settings", s.saveSettings)
	r.Get("/styles/{file}", s.stylesheet)
	return r
}

// Run listens on configured address and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", s.cfg.Listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(s.log),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Serve(ln)
	}()
	s.log.Info("Serving", zap.Stringer("addr", ln.Addr()), zap.Bool("auth", len(s.cfg.Auth.Username) > 0))

	select {
	case err := <-errs:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("Shutting down")
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("unable to shutdown server: %w", err)
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) showSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.resolver.Load(r.Context())
	if err != nil {
		s.fail(w, "unable to load settings", err)
		return
	}
	s.renderPage(w, form.Page{Action: r.URL.Path, Settings: settings})
}

func (s *Server) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	saved := false
	if form.Submitted(r.PostForm) {
		if !s.nonces.consume(r.PostForm.Get(form.NonceField)) {
			s.log.Warn("Rejected settings submission", zap.String("remote", r.RemoteAddr))
			http.Error(w, "The link you followed has expired.", http.StatusForbidden)
			return
		}
		if err := s.resolver.Save(r.Context(), form.ParseSubmission(r.PostForm)); err != nil {
			s.fail(w, "unable to save settings", err)
			return
		}
		saved = true
	}

	settings, err := s.resolver.Load(r.Context())
	if err != nil {
		s.fail(w, "unable to load settings", err)
		return
	}
	s.renderPage(w, form.Page{Action: r.URL.Path, Saved: saved, Settings: settings})
}

func (s *Server) renderPage(w http.ResponseWriter, p form.Page) {
	p.Nonce = s.nonces.issue()

	var buf bytes.Buffer
	if err := form.Render(&buf, p); err != nil {
		s.fail(w, "unable to render settings page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) stylesheet(w http.ResponseWriter, r *http.Request) {
	handle, ok := strings.CutSuffix(chi.URLParam(r, "file"), ".css")
	if !ok || !s.knownHandle(handle) {
		http.NotFound(w, r)
		return
	}

	sheets := styles.NewSheets(s.log)
	if err := styles.Inject(r.Context(), s.resolver, sheets, s.styles); err != nil {
		s.fail(w, "unable to generate styles", err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := sheets.Stylesheet(handle).WriteTo(w); err != nil {
		s.log.Debug("Unable to send stylesheet", zap.String("handle", handle), zap.Error(err))
	}
}

func (s *Server) knownHandle(handle string) bool {
	handles := make([]string, 0, len(common.ScopeNames()))
	for _, name := range common.ScopeNames() {
		handles = append(handles, s.styles.Handle(common.Scope(name)))
	}
	return slices.Contains(handles, handle)
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	s.log.Error("Request failed", zap.String("reason", msg), zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("Request",
			zap.String("id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)))
	})
}

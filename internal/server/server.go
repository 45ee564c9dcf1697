// Package server exposes the theme controller over HTTP for remote toggle
// controls (status-bar buttons, scripts, browser bookmarklets).
package server

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/darkawower/shade/internal/controller"
	"github.com/darkawower/shade/internal/icon"
	"github.com/darkawower/shade/internal/theme"
)

// ThemeController defines the controller operations the server needs.
// Defined here (consumer side) to allow different implementations.
type ThemeController interface {
	ResolveWithSource() (theme.Theme, controller.Source)
	Toggle() error
	Set(t theme.Theme) error
}

// Config holds server configuration.
type Config struct {
	Listen          string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Version         string
	IconSize        int
}

// Server represents the HTTP control server.
type Server struct {
	ctrl ThemeController
	cfg  Config

	// Reload, when set, is invoked by the config watcher after the config
	// file changes.
	Reload func() error
}

// New creates a new Server instance.
func New(ctrl ThemeController, cfg Config) *Server {
	return &Server{ctrl: ctrl, cfg: cfg}
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.routes(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Listen)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP,
		rest.Trace,
		rest.AppInfo("shade", "darkawower", s.cfg.Version),
		rest.Ping,
	)

	router.HandleFunc("GET /theme", s.handleTheme)
	router.HandleFunc("POST /theme/toggle", s.handleToggle)
	router.HandleFunc("PUT /theme/{theme}", s.handleSet)
	router.HandleFunc("GET /icon.png", s.handleIcon)

	return router
}

// handleTheme returns the resolved theme.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	s.renderTheme(w)
}

// handleToggle flips the theme; this endpoint is the remote activation of
// the toggle control.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.Toggle(); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to toggle theme")
		return
	}
	s.renderTheme(w)
}

// handleSet persists an explicit theme choice.
func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	t, ok := theme.Parse(r.PathValue("theme"))
	if !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest,
			fmt.Errorf("unknown theme %q", r.PathValue("theme")), "theme must be light or dark")
		return
	}

	if err := s.ctrl.Set(t); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to set theme")
		return
	}
	s.renderTheme(w)
}

// handleIcon renders the toggle icon for the resolved theme.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	resolved, _ := s.ctrl.ResolveWithSource()

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, icon.ForTheme(resolved, s.cfg.IconSize)); err != nil {
		log.Printf("[WARN] failed to encode icon: %v", err)
	}
}

// renderTheme writes the resolved theme as JSON.
func (s *Server) renderTheme(w http.ResponseWriter) {
	resolved, source := s.ctrl.ResolveWithSource()
	rest.RenderJSON(w, rest.JSON{
		"theme":  resolved.String(),
		"source": string(source),
		"glyph":  resolved.Glyph(),
	})
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}

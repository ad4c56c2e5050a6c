package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/riftlens/winreport/internal/charts"
	"github.com/riftlens/winreport/internal/i18n"
	"github.com/riftlens/winreport/internal/palette"
	"github.com/riftlens/winreport/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the generated site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server is the local preview server for a generated site.
type Server struct {
	cfg        Config
	palette    palette.Palette
	logger     *slog.Logger
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server. A nil logger uses slog.Default.
func New(cfg Config, pal palette.Palette, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		palette: pal,
		logger:  logger,
		hub:     NewHub(logger),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The reload socket is long-lived and stays outside the timeout.
	r.Get("/ws/reload", s.hub.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/api/charts", s.handleCharts)
		r.Get("/api/manifest", s.handleManifest)
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))
	})

	return r
}

// chartsResponse is the body of GET /api/charts.
type chartsResponse struct {
	Lang     i18n.Variant          `json:"lang"`
	Defaults charts.EngineDefaults `json:"defaults"`
	Charts   []charts.Mounted      `json:"charts"`
}

// handleCharts serves the chart specs of one variant. An explicit lang
// follows the switcher's rule, so any value other than "en" selects Korean.
// Without one the variant is negotiated from Accept-Language.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	var v i18n.Variant
	if lang := r.URL.Query().Get("lang"); lang != "" {
		v = i18n.Parse(lang)
	} else {
		v = i18n.Negotiate(r.Header.Get("Accept-Language"))
	}

	list, err := charts.BuildVariant(charts.NewBuilder(v, s.palette))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Language", string(v))
	writeJSON(w, http.StatusOK, chartsResponse{
		Lang:     v,
		Defaults: charts.EngineDefaults{Color: s.palette.Text, BorderColor: s.palette.Border},
		Charts:   list,
	})
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	m, err := site.ReadManifest(s.cfg.SiteDir)
	if errors.Is(err, fs.ErrNotExist) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "site has not been built"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("preview server listening", "addr", addr, "site", s.cfg.SiteDir)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes reload sockets.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Package web serves the budget form over HTTP.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/wallet/internal/cli"
	"github.com/theirongolddev/wallet/internal/pipeline"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config controls the web server.
type Config struct {
	Addr           string
	CurrencySymbol string
	EventsBuffer   int
}

// Server serves the form, the JSON API and the event stream.
type Server struct {
	cfg     Config
	planner *pipeline.Planner
	tmpl    *template.Template
	log     *logrus.Logger

	// submitMu serializes submissions and resets so appends to the history
	// file never interleave within this process.
	submitMu sync.Mutex

	eventsMu    sync.RWMutex
	nextEventID int64
	events      []Event
	nextSubID   int
	subs        map[int]chan Event
}

// New returns a server backed by planner.
func New(cfg Config, planner *pipeline.Planner, log *logrus.Logger) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8501"
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 100
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}

	symbol := cfg.CurrencySymbol
	funcMap := template.FuncMap{
		"money":  func(v float64) string { return cli.FormatMoney(v, symbol) },
		"signed": func(v float64) string { return cli.FormatSignedMoney(v, symbol) },
		"share":  cli.FormatShare,
		"date":   func(t time.Time) string { return t.Format("2006-01-02") },
		"rows":   newRowsView,
	}
	tmpl, err := template.New("base").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Server{
		cfg:     cfg,
		planner: planner,
		tmpl:    tmpl,
		log:     log,
		subs:    make(map[int]chan Event),
	}, nil
}

// Router returns the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(withRequestLogging(s.log))

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/submit", s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/projection", s.handleAPIProjection).Methods(http.MethodGet)
	api.HandleFunc("/history", s.handleAPIHistory).Methods(http.MethodGet)
	api.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet)
	api.HandleFunc("/stream", s.handleStream).Methods(http.MethodGet)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		// Open event streams end when ctx does.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.WithField("addr", s.cfg.Addr).Info("serving budget form")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("web server: %w", err)
	}
}

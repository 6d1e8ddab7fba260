// Package server exposes the analyzer over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/speakwise/analyzer/auth"
	"github.com/speakwise/analyzer/orchestrator"
)

// Analyzer runs one analysis request.
type Analyzer interface {
	Run(ctx context.Context, audio orchestrator.Audio, userID string) (orchestrator.Report, error)
}

// Reports is the read side of the report store.
type Reports interface {
	Get(ctx context.Context, id string) (orchestrator.Report, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]orchestrator.Report, error)
	Ping(ctx context.Context) error
}

// Pinger is a dependency the health endpoint reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxUploadBytes int64
	AllowedOrigins []string
	Name           string
	Version        string
}

type Deps struct {
	Analyzer Analyzer
	Reports  Reports // nil when no store is configured
	Auth     *auth.Verifier
	ASR      Pinger
	Log      logrus.FieldLogger
}

type Server struct {
	httpServer *http.Server
	analyzer   Analyzer
	reports    Reports
	auth       *auth.Verifier
	asr        Pinger
	log        logrus.FieldLogger
	config     Config
	startAt    time.Time
}

func New(c Config, d Deps) *Server {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 25 << 20
	}
	s := &Server{
		analyzer: d.Analyzer,
		reports:  d.Reports,
		auth:     d.Auth,
		asr:      d.ASR,
		log:      d.Log,
		config:   c,
		startAt:  time.Now(),
	}
	s.httpServer = &http.Server{
		Addr:         c.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
	return s
}

// Handler is the full middleware-wrapped router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/speech/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/speech/reports", s.handleListReports)
	mux.HandleFunc("GET /api/speech/reports/{id}", s.handleGetReport)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.config.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})
	return s.recoverer(s.logRequests(c.Handler(mux)))
}

// Start blocks until the server stops. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.log.WithField("addr", s.config.Addr).Infof("%s listening", s.config.Name)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

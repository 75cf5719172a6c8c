// Package server exposes the chat endpoint and wires the prompt-assembly
// pipeline to the generation service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/elabo-srl/assistant/internal/courses"
	"github.com/elabo-srl/assistant/internal/notify"
	"github.com/elabo-srl/assistant/internal/presence"
	"github.com/elabo-srl/assistant/internal/prompt"
)

// Generator is the text-generation service consumed as a black box.
type Generator interface {
	GenerateContent(ctx context.Context, segments []string) (string, error)
}

// EventSource supplies today's calendar events for presence inference.
type EventSource interface {
	ListTodayEvents(ctx context.Context) ([]presence.Event, error)
}

type Server struct {
	coursesLoader *courses.Loader
	promptBuilder *prompt.Builder
	classifier    *presence.Classifier
	staff         []string
	historySize   int
	generator     Generator
	events        EventSource // nil when the calendar is not configured
	notifyService *notify.Service
	apiKey        string
	httpSrv       *http.Server
	port          int
}

// ServerConfig holds everything the server needs to handle chat requests
type ServerConfig struct {
	Port          int
	APIKey        string
	Staff         []string
	HistorySize   int
	CoursesLoader *courses.Loader
	PromptBuilder *prompt.Builder
	Classifier    *presence.Classifier
	Generator     Generator
	Events        EventSource
	NotifyService *notify.Service
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		coursesLoader: cfg.CoursesLoader,
		promptBuilder: cfg.PromptBuilder,
		classifier:    cfg.Classifier,
		staff:         cfg.Staff,
		historySize:   cfg.HistorySize,
		generator:     cfg.Generator,
		events:        cfg.Events,
		notifyService: cfg.NotifyService,
		apiKey:        cfg.APIKey,
		port:          cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // the generation call dominates latency
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ping", s.handlePing)
	mux.HandleFunc("/", s.handleRoot)
}

func (s *Server) Start() error {
	fmt.Printf("Starting HTTP server on http://localhost:%d\n", s.port)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds the permissive CORS headers the web widget relies on
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-api-key")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

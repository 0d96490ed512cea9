// Package http provides the JSON API server.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"financas/internal/backend"
	"financas/internal/log"
	"financas/internal/middleware/ratelimit"
	"financas/internal/middleware/security"
	"financas/internal/middleware/trace"
)

type Server struct {
	http.Server
	store        backend.Store
	logger       *log.Logger
	rateLimiter  *ratelimit.Limiter
	traceMW      *trace.Middleware
	headersMW    *security.HeadersMiddleware
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, store backend.Store) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		store:       store,
		logger:      log.New(log.DefaultConfig()).WithComponent(log.ComponentHTTP),
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		traceMW:     trace.NewMiddleware(extractClientIP),
		headersMW:   security.NewHeadersMiddleware(security.DefaultHeadersConfig()),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	mux.HandleFunc("/api/dashboard", s.wrap(s.handleDashboard))
	mux.HandleFunc("/api/expenses", s.wrap(s.handleExpenses))
	mux.HandleFunc("/api/incomes", s.wrap(s.handleIncomes))
	mux.HandleFunc("/api/investments", s.wrap(s.handleInvestments))
	mux.HandleFunc("/api/portfolio", s.wrap(s.handlePortfolio))

	mux.HandleFunc("/api/transactions", s.wrap(s.handleTransactions))
	mux.HandleFunc("/api/transactions/delete", s.wrap(s.handleDeleteTransaction))
	mux.HandleFunc("/api/transactions/toggle", s.wrap(s.handleToggleTransaction))

	mux.HandleFunc("/api/reports/monthly", s.wrap(s.handleMonthlyReport))
	mux.HandleFunc("/api/reports/annual", s.wrap(s.handleAnnualReport))
	mux.HandleFunc("/api/reports/comparative", s.wrap(s.handleComparativeReport))

	return s
}

// wrap applies tracing, context logging, security headers, and mutation
// rate limiting to a handler.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	limited := s.rateLimiter.Middleware(extractClientIP, nil)

	requestID := func(r *http.Request) string {
		return trace.GetRequestID(r.Context())
	}

	handler := http.Handler(next)
	handler = s.headersMW.Middleware(handler)
	handler = log.RequestIDMiddleware(requestID)(handler)
	handler = log.Middleware(s.logger)(handler)
	handler = s.traceMW.Middleware(handler)

	mutating := limited(handler)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			handler.ServeHTTP(w, r)
			return
		}
		mutating.ServeHTTP(w, r)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// Ready means the store answers.
	if _, err := s.store.GetAll(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Shutdown stops the server and its background goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// Package httpapi exposes the planning reports and write paths over
// HTTP. Reports are served as JSON with CSV export variants; responses
// are cached per tenant and period with a short TTL.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nmasri/laneplan/pkg/application/services/planning"
)

// DefaultCacheTTL bounds how stale a cached report may be when writes
// arrive through a path the server does not observe.
const DefaultCacheTTL = 30 * time.Second

// Server serves the planning HTTP API.
type Server struct {
	svc   *planning.Service
	cache *reportCache
	log   *slog.Logger
}

// NewServer creates a server over the planning service
func NewServer(svc *planning.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		svc:   svc,
		cache: newReportCache(DefaultCacheTTL),
		log:   log,
	}
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/planning/gap", s.handleGap)
	mux.HandleFunc("GET /api/planning/gap/export", s.handleGapExport)
	mux.HandleFunc("GET /api/dispatch", s.handleDispatch)
	mux.HandleFunc("GET /api/dispatch/export", s.handleDispatchExport)
	mux.HandleFunc("GET /api/reports/accuracy", s.handleAccuracy)
	mux.HandleFunc("POST /api/periods/lock", s.handleLock(true))
	mux.HandleFunc("POST /api/periods/unlock", s.handleLock(false))
	mux.HandleFunc("POST /api/demand", s.handleSaveDemand)
	mux.HandleFunc("POST /api/supply", s.handleSaveSupply)

	return s.logRequests(mux)
}

// logRequests logs method, path and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

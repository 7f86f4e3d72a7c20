// ABOUTME: HTTP server exposing the recommendation core over a chi router
// ABOUTME: Thin plumbing only; all semantics live in internal/core
package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harper/cinematch/internal/core"
	"github.com/harper/cinematch/internal/storage"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinematch_requests_total",
		Help: "HTTP requests served, by route and status code.",
	}, []string{"route", "status"})

	recommendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cinematch_recommend_duration_seconds",
		Help:    "Latency of recommendation requests.",
		Buckets: prometheus.DefBuckets,
	})
)

// Server serves the recommendation API.
type Server struct {
	recommender *core.Recommender
	history     storage.HistoryStore
	aggregator  *core.Aggregator
	router      chi.Router

	// Defaults applied when a request leaves both weights unset.
	defaultGenreWeight    float64
	defaultOverviewWeight float64
}

// NewServer wires the core into a chi router.
func NewServer(recommender *core.Recommender, history storage.HistoryStore, genreWeight, overviewWeight float64) *Server {
	s := &Server{
		recommender:           recommender,
		history:               history,
		aggregator:            core.NewAggregator(history),
		defaultGenreWeight:    genreWeight,
		defaultOverviewWeight: overviewWeight,
	}

	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/recommend", s.handleRecommend)
		r.Get("/history", s.handleHistoryList)
		r.Delete("/history", s.handleHistoryClear)
		r.Get("/history/{id}", s.handleHistoryGet)
		r.Delete("/history/{id}", s.handleHistoryDelete)
		r.Get("/stats", s.handleStats)
	})
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("cinematch API listening on %s", addr)
	return srv.ListenAndServe()
}

// requestLogger tags each request with an id and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		// Label by route pattern, not the raw path, to keep cardinality bounded.
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		requestsTotal.WithLabelValues(route, strconv.Itoa(sw.status)).Inc()
		log.Printf("%s %s %d %s id=%s", r.Method, r.URL.Path, sw.status,
			time.Since(start).Round(time.Millisecond), requestID)
	})
}

// statusWriter records the status code written to the response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/camelgraph"
	"github.com/aretw0/camelgraph/internal/presentation/diagram"
	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/runner"
)

// DefaultMaxBodyBytes bounds the size of an uploaded route document.
const DefaultMaxBodyBytes int64 = 4 << 20

// ErrorResponse is the body of every failed conversion.
type ErrorResponse struct {
	Error string `json:"error"`
	Tag   string `json:"tag,omitempty"`
	Line  int    `json:"line,omitempty"`
}

// Server serves conversions over HTTP.
type Server struct {
	Runner       *runner.Runner
	Gatherer     prometheus.Gatherer
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewHandler creates a new HTTP handler for the runner.
// gatherer backs /metrics; nil serves the default registry.
func NewHandler(r *runner.Runner, gatherer prometheus.Gatherer, maxBodyBytes int64) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	server := &Server{
		Runner:       r,
		Gatherer:     gatherer,
		MaxBodyBytes: maxBodyBytes,
		Logger:       r.Logger,
	}
	if server.Logger == nil {
		server.Logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/convert", server.Convert)
	router.Get("/healthz", server.Health)
	router.Get("/version", server.Version)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return enableCORS(router)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Convert handles the POST /convert request. The body is the route document.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	collaborators := false
	if raw := q.Get("beans"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: "beans must be a boolean"})
			return
		}
		collaborators = v
	}

	body, err := readBody(w, r, s.MaxBodyBytes)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "route document too large"})
			return
		}
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	res, err := s.Runner.Run(r.Context(), runner.Request{
		Document:      body,
		Format:        diagram.Format(q.Get("format")),
		Layout:        diagram.Layout(q.Get("layout")),
		Collaborators: collaborators,
	})
	if err != nil {
		status, resp := classify(err)
		if status >= http.StatusInternalServerError {
			s.Logger.Error("Convert failed", "error", err)
		} else {
			s.Logger.Warn("Convert rejected", "error", err)
		}
		writeError(w, status, resp)
		return
	}

	cache := "miss"
	if res.Cached {
		cache = "hit"
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("X-Cache", cache)
	if res.Nodes >= 0 {
		w.Header().Set("X-Node-Count", strconv.Itoa(res.Nodes))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Output); err != nil {
		s.Logger.Error("Convert response write failed", "error", err)
	}
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Version handles GET /version.
func (s *Server) Version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"version": strings.TrimSpace(camelgraph.Version)})
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// classify maps a conversion error onto a status code and response body.
func classify(err error) (int, ErrorResponse) {
	resp := ErrorResponse{Error: err.Error()}
	if tag, line, ok := domain.Locate(err); ok {
		resp.Tag = tag
		resp.Line = line
	}

	switch {
	case errors.Is(err, domain.ErrMalformedDocument),
		errors.Is(err, diagram.ErrUnknownFormat),
		errors.Is(err, diagram.ErrUnknownLayout):
		return http.StatusBadRequest, resp
	case errors.Is(err, domain.ErrUnknownConstruct),
		errors.Is(err, domain.ErrUnresolvedReference),
		errors.Is(err, domain.ErrMissingAttribute),
		errors.Is(err, domain.ErrUnexpectedConstruct):
		return http.StatusUnprocessableEntity, resp
	default:
		return http.StatusInternalServerError, resp
	}
}

func writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

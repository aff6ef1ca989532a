package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/sbmltab"
	"github.com/aretw0/sbmltab/internal/metrics"
	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// MaxBodyBytes bounds the size of an uploaded configuration.
const MaxBodyBytes = 8 << 20

// Config holds what every request-scoped generator is built from.
type Config struct {
	Logger      *slog.Logger
	Metrics     *metrics.Collector // nil disables /metrics
	Palette     domain.Palette
	FoldTagCase bool
}

// Server serves the generator over HTTP. It keeps no state between requests.
type Server struct {
	cfg Config
}

// NewHandler creates a new HTTP handler for the generator.
func NewHandler(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Palette == (domain.Palette{}) {
		cfg.Palette = domain.DefaultPalette()
	}
	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Get("/healthz", s.Health)
	r.Post("/generate", s.Generate)
	r.Post("/inspect", s.Inspect)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": strings.TrimSpace(sbmltab.Version),
	})
}

// Generate handles POST /generate. The body is the XML configuration and the
// response is the Python module. color1 and color2 override the palette.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	palette := s.cfg.Palette
	if c := r.URL.Query().Get("color1"); c != "" {
		palette.Primary = c
	}
	if c := r.URL.Query().Get("color2"); c != "" {
		palette.Secondary = c
	}

	res, err := s.generator(palette).Generate(r.Context(), requestName(r), data)
	if err != nil {
		s.fail(w, "Generate", err)
		return
	}

	w.Header().Set("Content-Type", "text/x-python; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+domain.DefaultOutputFile+`"`)
	w.Header().Set("X-Sbmltab-Entries", strconv.Itoa(len(res.Model.Entries)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Code); err != nil {
		s.cfg.Logger.Warn("Generate: write failed", "error", err)
	}
}

// Inspect handles POST /inspect and returns the tab model as JSON.
func (s *Server) Inspect(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	model, err := s.generator(s.cfg.Palette).Model(r.Context(), requestName(r), data)
	if err != nil {
		s.fail(w, "Inspect", err)
		return
	}
	writeJSON(w, http.StatusOK, model)
}

func (s *Server) generator(p domain.Palette) *sbmltab.Generator {
	opts := []sbmltab.Option{
		sbmltab.WithLogger(s.cfg.Logger),
		sbmltab.WithPalette(p),
		sbmltab.WithFoldTagCase(s.cfg.FoldTagCase),
	}
	if s.cfg.Metrics != nil {
		opts = append(opts, sbmltab.WithMetrics(s.cfg.Metrics))
	}
	return sbmltab.New(opts...)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		s.cfg.Logger.Warn("Invalid request body", "error", err)
		return nil, false
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "Empty request body")
		return nil, false
	}
	return data, true
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.cfg.Logger.Error(op+" failed", "error", err)
	} else {
		s.cfg.Logger.Debug(op+" rejected", "error", err)
	}
	writeError(w, status, err.Error())
}

// statusFor maps generation errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		parse *domain.ParseError
		attr  *domain.MissingAttributeError
	)
	switch {
	case errors.As(err, &parse):
		return http.StatusBadRequest
	case errors.As(err, &attr), errors.Is(err, domain.ErrEntryPointNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// requestName labels the uploaded document in error messages.
func requestName(r *http.Request) string {
	if name := r.URL.Query().Get("name"); name != "" {
		return name
	}
	return "request body"
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

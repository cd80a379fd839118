// Package http exposes the Solver's command surface as JSON over HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/puzzler/internal/logging"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds request bodies; a cube state is 54 small integers.
const maxBodyBytes = 64 << 10

// Solver is the command surface served over HTTP. *puzzler.Solver implements it.
type Solver interface {
	Solve(ctx context.Context, puzzle string, values []int) (*domain.Solution, error)
	Apply(puzzle string, values []int, moves []string) ([]int, error)
	Cost(puzzle string, values []int, depth int) (float64, error)
	Play(ctx context.Context, puzzle string, values []int, moves []string, r ports.Renderer, interval time.Duration) ([]int, error)
}

// Server holds the handler dependencies.
type Server struct {
	Solver   Solver
	Logger   *slog.Logger
	Metrics  http.Handler
	Interval time.Duration
	Version  string
	Puzzles  []string
}

type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithPlayInterval sets the pause between streamed frames.
func WithPlayInterval(d time.Duration) Option {
	return func(s *Server) {
		s.Interval = d
	}
}

// WithInfo sets what GET /info reports.
func WithInfo(version string, puzzles []string) Option {
	return func(s *Server) {
		s.Version = version
		s.Puzzles = puzzles
	}
}

// NewHandler creates the router.
func NewHandler(solver Solver, opts ...Option) http.Handler {
	s := &Server{
		Solver:  solver,
		Logger:  logging.NewNop(),
		Version: "unknown",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.Route("/v1/{puzzle}", func(r chi.Router) {
		r.Post("/solve", s.Solve)
		r.Post("/apply", s.Apply)
		r.Post("/cost", s.Cost)
		r.Post("/play", s.Play)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		began := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(began),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// StateRequest is the body of every /v1/{puzzle} command.
type StateRequest struct {
	State []int    `json:"state"`
	Moves []string `json:"moves,omitempty"`
	Depth int      `json:"depth,omitempty"`
}

// StateResponse is returned by /apply.
type StateResponse struct {
	Puzzle string `json:"puzzle"`
	State  []int  `json:"state"`
}

// CostResponse is returned by /cost.
type CostResponse struct {
	Puzzle string  `json:"puzzle"`
	Cost   float64 `json:"cost"`
	Depth  int     `json:"depth"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error  string        `json:"error"`
	Status domain.Status `json:"status,omitempty"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (StateRequest, bool) {
	var body StateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return body, false
	}
	return body, true
}

// Solve handles POST /v1/{puzzle}/solve.
// A search that ends without a path still returns the Solution, with 422 or 504.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r)
	if !ok {
		return
	}
	puzzle := chi.URLParam(r, "puzzle")

	solution, err := s.Solver.Solve(r.Context(), puzzle, body.State)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, statusFor(solution.Status), solution)
}

// Apply handles POST /v1/{puzzle}/apply.
func (s *Server) Apply(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r)
	if !ok {
		return
	}
	puzzle := chi.URLParam(r, "puzzle")

	state, err := s.Solver.Apply(puzzle, body.State, body.Moves)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, StateResponse{Puzzle: puzzle, State: state})
}

// Cost handles POST /v1/{puzzle}/cost.
func (s *Server) Cost(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r)
	if !ok {
		return
	}
	puzzle := chi.URLParam(r, "puzzle")

	c, err := s.Solver.Cost(puzzle, body.State, body.Depth)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, CostResponse{Puzzle: puzzle, Cost: c, Depth: body.Depth})
}

// Play handles POST /v1/{puzzle}/play as a Server-Sent Events stream: one "frame"
// event per state, then a "done" event. Without moves the path is solved first and
// sent as a "solution" event.
func (s *Server) Play(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decode(w, r)
	if !ok {
		return
	}
	puzzle := chi.URLParam(r, "puzzle")

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "streaming not supported"})
		return
	}

	moves := body.Moves
	var solution *domain.Solution
	if len(moves) == 0 {
		var err error
		solution, err = s.Solver.Solve(r.Context(), puzzle, body.State)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if solution.Status != domain.StatusFound {
			s.writeJSON(w, statusFor(solution.Status), solution)
			return
		}
		moves = solution.Moves
	} else if _, err := s.Solver.Apply(puzzle, body.State, nil); err != nil {
		// Only the start state is checked; a bad move ends the stream with an error event.
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if solution != nil {
		writeEvent(w, "solution", solution)
		flusher.Flush()
	}

	stream := ports.RendererFunc(func(ctx context.Context, f domain.Frame) error {
		if err := writeEvent(w, "frame", f); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	final, err := s.Solver.Play(r.Context(), puzzle, body.State, moves, stream, s.Interval)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			writeEvent(w, "error", ErrorResponse{Error: err.Error()})
			flusher.Flush()
		}
		s.Logger.Warn("play stream ended early", "puzzle", puzzle, "error", err)
		return
	}
	writeEvent(w, "done", StateResponse{Puzzle: puzzle, State: final})
	flusher.Flush()
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":     "puzzler-http",
		"version": s.Version,
		"puzzles": s.Puzzles,
	})
}

// -- Helpers --

// statusFor maps a search outcome to an HTTP status.
func statusFor(status domain.Status) int {
	switch status {
	case domain.StatusFound:
		return http.StatusOK
	case domain.StatusTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownPuzzle):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedState), errors.Is(err, domain.ErrInvalidAction):
		code = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	}
	if code == http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, code, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func writeEvent(w http.ResponseWriter, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

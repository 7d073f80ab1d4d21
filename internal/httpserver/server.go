// internal/httpserver/server.go
//
// HTTP surface over the solver operations.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Diagnostics: "/", "/health", "/debug/words".
//   - Stateless compute endpoints: POST /filter, /solve, /match.
//
// Notes:
//   - The server holds only the preloaded dictionary, read-only. Every
//     request is an independent one-shot computation; requests may supply
//     their own candidate list instead of the dictionary.
//   - CORS is origin-aware and driven by CLIENT_ORIGIN.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/woolsdev/wools/internal/pattern"
	"github.com/woolsdev/wools/internal/solver"
	"github.com/woolsdev/wools/internal/words"
)

// Server bundles the router and the preloaded dictionary.
type Server struct {
	r    *chi.Mux
	dict []words.Word
}

// New constructs a Server, installs middleware, and registers routes.
func New(dict []words.Word) *Server {
	s := &Server{r: chi.NewRouter(), dict: dict}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // origin-aware CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wools","endpoints":["/health","/debug/words","POST /filter","POST /solve","POST /match"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": len(s.dict)})
	})

	// --- compute endpoints ---
	s.r.Post("/filter", s.handleFilter)
	s.r.Post("/solve", s.handleSolve)
	s.r.Post("/match", s.handleMatch)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Int("words", len(s.dict)).Msg("serving wools api")
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers -----------------------------------

// filterReq is the payload for POST /filter.
type filterReq struct {
	Solution   string   `json:"solution"`
	Guesses    []string `json:"guesses"`
	Candidates []string `json:"candidates,omitempty"` // defaults to the dictionary
}

// clueReq is one guess/hints pair for POST /solve.
type clueReq struct {
	Guess string `json:"guess"`
	Hints string `json:"hints"` // g/y/b encoding
}

// solveReq is the payload for POST /solve.
type solveReq struct {
	Clues      []clueReq `json:"clues"`
	Candidates []string  `json:"candidates,omitempty"`
}

// matchReq is the payload for POST /match.
type matchReq struct {
	Solution   string   `json:"solution"`
	Hints      string   `json:"hints"` // g/y/b encoding
	Candidates []string `json:"candidates,omitempty"`
}

// wordsRes is the shared response shape: the surviving words, in input order.
type wordsRes struct {
	Words []string `json:"words"`
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad_json")
		return
	}
	solution, err := words.Parse(req.Solution)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	guesses, err := words.ParseAll(req.Guesses)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	candidates, err := s.candidates(req.Candidates)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeWords(w, solver.Filter(candidates, solution, guesses))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad_json")
		return
	}
	clues := make([]solver.Clue, 0, len(req.Clues))
	for _, c := range req.Clues {
		guess, err := words.Parse(c.Guess)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		hints, err := pattern.ParseHints(c.Hints)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		clues = append(clues, solver.Clue{Guess: guess, Hints: hints})
	}
	candidates, err := s.candidates(req.Candidates)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	out, err := solver.Solve(candidates, clues)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeWords(w, out)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad_json")
		return
	}
	solution, err := words.Parse(req.Solution)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	hints, err := pattern.ParseHints(req.Hints)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	candidates, err := s.candidates(req.Candidates)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeWords(w, solver.Match(candidates, solution, hints))
}

// candidates parses a request-supplied list, or falls back to the
// preloaded dictionary when none is given.
func (s *Server) candidates(raw []string) ([]words.Word, error) {
	if len(raw) == 0 {
		return s.dict, nil
	}
	return words.ParseAll(raw)
}

func writeWords(w http.ResponseWriter, out []words.Word) {
	res := wordsRes{Words: make([]string, 0, len(out))}
	for _, word := range out {
		res.Words = append(res.Words, word.String())
	}
	_ = json.NewEncoder(w).Encode(res)
}

func badRequest(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

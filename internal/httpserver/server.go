// internal/httpserver/server.go
//
// HTTP wiring for wordled, the word-of-the-day service.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON, CORS).
//   - GET /svc/wordle/v2/{date}.json — the daily solution document.
//   - Diagnostics: "/", "/health", "/debug/words".
//
// Notes:
//   - CORS is origin-aware and credentials-enabled so browser clients work.
//   - Solutions are pinned per date in SQLite on first request; the pinned
//     row is authoritative from then on.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tui/internal/daily"
	"github.com/robalobadob/wordle-tui/internal/words"
)

// Server bundles the router, the pin store, and the selection salt.
type Server struct {
	r     *chi.Mux
	store *daily.Store
	salt  string
}

// New constructs a Server, installs middleware, and registers routes.
func New(store *daily.Store, salt string) *Server {
	s := &Server{r: chi.NewRouter(), store: store, salt: salt}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordled","endpoints":["/health","GET /svc/wordle/v2/{date}.json"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/svc/wordle/v2/{date}.json", s.handleSolution)

	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": words.Count()})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

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

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ solution -----------------------------------

// solutionRes is the daily solution document. Solution is lowercase; the
// client uppercases on its side.
type solutionRes struct {
	Date      string `json:"print_date"`
	Solution  string `json:"solution"`
	WordIndex int    `json:"word_index"`
}

// handleSolution serves the solution for the date in the path. The first
// request for a date computes and pins the word; later requests (and list or
// salt changes) always see the pinned row.
func (s *Server) handleSolution(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !daily.ValidDateKey(date) {
		http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
		return
	}

	if a, ok, err := s.store.Pinned(r.Context(), date); err != nil {
		log.Error().Err(err).Str("date", date).Msg("read pinned puzzle")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	} else if ok {
		_ = json.NewEncoder(w).Encode(solutionRes{Date: a.Date, Solution: a.Word, WordIndex: a.WordIndex})
		return
	}

	answers := words.Answers()
	if len(answers) == 0 {
		http.Error(w, `{"error":"no_words"}`, http.StatusInternalServerError)
		return
	}
	idx := daily.WordIndex(date, s.salt, len(answers))
	if err := s.store.Pin(r.Context(), daily.Assignment{Date: date, Word: answers[idx], WordIndex: idx}); err != nil {
		log.Error().Err(err).Str("date", date).Msg("pin puzzle")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}

	// Re-read so a concurrent first writer wins consistently.
	a, ok, err := s.store.Pinned(r.Context(), date)
	if err != nil || !ok {
		log.Error().Err(err).Str("date", date).Msg("read back pinned puzzle")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(solutionRes{Date: a.Date, Solution: a.Word, WordIndex: a.WordIndex})
}

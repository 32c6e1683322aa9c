// Package httpapi serves the plain HTTP health endpoints of the server: /healthz
// checks the database, /readyz reports whether the sync API accepts calls.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Readiness is flipped by the server once startup is done.
type Readiness struct {
	ready atomic.Bool
}

func (r *Readiness) Set(v bool) { r.ready.Store(v) }

func (r *Readiness) Ready() bool { return r.ready.Load() }

type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v statusResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func NewRouter(db Pinger, readiness *Readiness) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(10 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable", Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !readiness.Ready() {
			writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "starting"})
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{Status: "ready"})
	})

	return r
}

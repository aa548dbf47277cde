// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package httpapi is the optional operational surface a running search
// can expose: liveness, prometheus scraping, and a point-in-time stats
// snapshot. Grounded on the backend example's cmd/server/main.go: a chi
// router with the standard middleware stack (RequestID, RealIP, Logger,
// Recoverer, Timeout) and a JSON health handler; the OIDC/webhook-auth
// middleware that example wires has no analogue here (this surface is
// read-only and unauthenticated, matching the CLI's single-operator use
// case) so it is not carried over.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardforge/seedsearch/search"
)

// StatsSource is anything that can report the run's current auto-cutoff
// state; *search.Context satisfies it.
type StatsSource interface {
	Snapshot() search.Stats
}

// NewRouter builds the chi router serving /healthz, /metrics, and
// /stats. stats may be nil before a run has started, in which case
// /stats reports zero values.
func NewRouter(stats StatsSource) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", healthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/stats", statsHandler(stats))

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "healthy",
		"service":   "seedsearch",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func statsHandler(stats StatsSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var snap search.Stats
		if stats != nil {
			snap = stats.Snapshot()
		}
		_ = json.NewEncoder(w).Encode(snap)
	}
}

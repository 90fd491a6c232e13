// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/shanakasp/backendNextSupabase/cliparse"
	"github.com/shanakasp/backendNextSupabase/handlers"
	"github.com/shanakasp/backendNextSupabase/metrics"
	"github.com/shanakasp/backendNextSupabase/middleware"
	"github.com/shanakasp/backendNextSupabase/store"
)

func NewRouter(answers store.Answers, archive store.Archive, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	responseHandler := handlers.NewResponseHandler(answers, archive, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Respondent flow
	mux.HandleFunc("POST /submit-email", middleware.WithLogging(responseHandler.SubmitEmail))
	mux.HandleFunc("POST /submit-question", middleware.WithLogging(responseHandler.SubmitQuestion))

	// Progress and recovery
	mux.HandleFunc("GET /progress/{email}", middleware.WithLogging(responseHandler.GetProgress))
	mux.HandleFunc("POST /progress/{email}/sync", middleware.WithLogging(responseHandler.SyncResponse))
	mux.HandleFunc("DELETE /progress/{email}", middleware.WithLogging(responseHandler.DeleteResponse))

	// Archived responses
	mux.HandleFunc("GET /archive/{email}", middleware.WithLogging(responseHandler.GetArchived))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey-intake API v1"))
	})

	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for intake traffic.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestDuration measures handler latency.
	// Labels: method, route, code
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "survey",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "code"})

	// answersTotal counts applied answers.
	// Labels: question, outcome (ok, or the error kind)
	answersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survey",
		Subsystem: "engine",
		Name:      "answers_total",
		Help:      "Answers submitted, by question and outcome",
	}, []string{"question", "outcome"})

	// completionsTotal counts in-progress -> complete transitions.
	completionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "survey",
		Subsystem: "engine",
		Name:      "completions_total",
		Help:      "Responses that became complete",
	})

	// archiveWrites counts archive upserts.
	// Labels: outcome (ok, error)
	archiveWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survey",
		Subsystem: "archive",
		Name:      "writes_total",
		Help:      "Archive upserts by outcome",
	}, []string{"outcome"})
)

// ObserveRequest records one finished request.
func ObserveRequest(method, route string, code int, seconds float64) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(seconds)
}

// Answer records one submission outcome.
func Answer(question int, outcome string) {
	answersTotal.WithLabelValues(strconv.Itoa(question), outcome).Inc()
}

// Completion records a response turning complete.
func Completion() {
	completionsTotal.Inc()
}

// ArchiveWrite records an archive upsert.
func ArchiveWrite(err error) {
	if err != nil {
		archiveWrites.WithLabelValues("error").Inc()
		return
	}
	archiveWrites.WithLabelValues("ok").Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

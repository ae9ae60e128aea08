// Package metrics exposes the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
	ResultNotFound = "not_found"
)

var (
	// StoreWrites counts durable rewrites of the user table by operation.
	StoreWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_store_writes_total",
			Help: "Total number of user table rewrites",
		},
		[]string{"op", "result"}, // op: insert, replace, init
	)

	// StoreSkippedLines counts malformed lines dropped while decoding the user table.
	StoreSkippedLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_store_skipped_lines_total",
			Help: "Total number of malformed user table lines skipped on read",
		},
	)

	// Recommendations counts recommendation requests by flow.
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"kind", "result"}, // kind: films, local
	)

	// LLMRequests counts calls to the hosted model.
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_llm_requests_total",
			Help: "Total number of generative model calls",
		},
		[]string{"result"},
	)

	// LLMCircuitState is 0 when closed, 1 when half-open and 2 when open.
	LLMCircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_llm_circuit_state",
			Help: "State of the generative model circuit breaker",
		},
	)
)

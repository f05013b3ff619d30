// Package telemetry holds the tracer and Prometheus collectors shared by the engine.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gcbaptista/go-boggle-engine"

// Tracer returns the engine tracer from the global provider. Without a configured
// provider the spans are no-ops.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

var (
	// SolvesTotal counts solves by dictionary and outcome ("ok", "invalid_board", "not_found").
	SolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boggle_solves_total",
		Help: "Total solves by dictionary and result",
	}, []string{"dictionary", "result"})

	// SolveDuration tracks solve latency.
	SolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boggle_solve_duration_seconds",
		Help:    "Solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10us to ~80ms
	}, []string{"dictionary"})

	// SolveCandidates tracks how many candidates a search streamed before ranking.
	SolveCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boggle_solve_candidates",
		Help:    "Candidates emitted per solve before dedup and ranking",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	// DictionaryWords reports the number of words per dictionary.
	DictionaryWords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "boggle_dictionary_words",
		Help: "Number of words indexed per dictionary",
	}, []string{"dictionary"})

	// DictionaryNodes reports the structural node count per dictionary.
	DictionaryNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "boggle_dictionary_nodes",
		Help: "Number of prefix structure nodes per dictionary",
	}, []string{"dictionary", "representation"})

	// JobsTotal counts finished background jobs by type and status.
	JobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boggle_jobs_total",
		Help: "Total background jobs by type and final status",
	}, []string{"type", "status"})
)

// Representation names the dictionary layout for metric labels.
func Representation(compressed bool) string {
	if compressed {
		return "radix"
	}
	return "trie"
}

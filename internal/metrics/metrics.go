// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics wraps the run's prometheus collectors. Grounded on
// teacher_metrics/metrics.go's Metrics{Registry} wrapper; the teacher's
// separate hand-rolled Counter/Gauge/Averager/Registry interfaces
// (teacher_metrics/metric.go) exist only because the consensus engine
// needed metrics usable without a live prometheus registry wired in —
// here a caller that wants no metrics passes a nil *metrics.Metrics to
// search.Run/RunWithWorkers instead, so collectors are registered
// directly against prometheus.Registerer without that indirection.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every collector one search run publishes.
type Metrics struct {
	Registry prometheus.Registerer

	SeedsEvaluated   prometheus.Counter
	LaneGroupsDone   prometheus.Counter
	MatchesFound     prometheus.Counter
	ResultsDropped   prometheus.Counter
	ActiveCutoff     prometheus.Gauge
	AutoCutoffActive prometheus.Gauge
}

// New constructs and registers every collector against reg. Grounded on
// teacher_metrics/metrics.go's NewMetrics.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Registry: reg,
		SeedsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seedsearch",
			Name:      "seeds_evaluated_total",
			Help:      "Total seeds passed to the scalar evaluator.",
		}),
		LaneGroupsDone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seedsearch",
			Name:      "lane_groups_processed_total",
			Help:      "Total lane-groups pulled from the driver and vector-evaluated.",
		}),
		MatchesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seedsearch",
			Name:      "matches_found_total",
			Help:      "Total seeds accepted into the result sink.",
		}),
		ResultsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seedsearch",
			Name:      "results_dropped_total",
			Help:      "Total matches dropped because the result sink was full.",
		}),
		ActiveCutoff: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seedsearch",
			Name:      "active_cutoff",
			Help:      "The score a result currently needs to be accepted.",
		}),
		AutoCutoffActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seedsearch",
			Name:      "auto_cutoff_enabled",
			Help:      "1 if the run is in auto-cutoff mode, 0 otherwise.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.SeedsEvaluated, m.LaneGroupsDone, m.MatchesFound, m.ResultsDropped,
		m.ActiveCutoff, m.AutoCutoffActive,
	} {
		if err := m.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register registers a single prometheus collector against the run's
// registry, matching teacher_metrics/metrics.go's Register method.
func (m *Metrics) Register(collector prometheus.Collector) error {
	return m.Registry.Register(collector)
}

// NewForTesting returns a Metrics backed by a throwaway registry, for
// callers that need collectors but don't care about collisions across
// test runs.
func NewForTesting() *Metrics {
	m, err := New(prometheus.NewRegistry())
	if err != nil {
		panic(err)
	}
	return m
}

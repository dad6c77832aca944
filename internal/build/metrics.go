package build

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// docsIngestedTotal counts documents read from the source, labeled by
	// outcome. Ingest records only "ok", for a document successfully inserted
	// into the TF store; pages the source skips as unparseable never reach
	// ingest and are not counted.
	docsIngestedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "esa",
		Subsystem: "build",
		Name:      "documents_total",
		Help:      "Total documents processed during ingest, by outcome",
	}, []string{"outcome"})

	termsInternedTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "esa",
		Subsystem: "build",
		Name:      "terms_interned",
		Help:      "Distinct terms interned into the word map so far",
	})

	conceptVectorsEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "esa",
		Subsystem: "build",
		Name:      "concept_vectors_emitted_total",
		Help:      "Total concept vectors written to the concept table",
	})

	buildStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "esa",
		Subsystem: "build",
		Name:      "step_duration_seconds",
		Help:      "Wall-clock duration of each build step",
		Buckets:   prometheus.DefBuckets,
	}, []string{"step"})
)

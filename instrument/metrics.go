package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	pulledMetric    = "ordered_elements_pulled_total"
	exhaustedMetric = "ordered_sequences_exhausted_total"
	sequenceLabel   = "sequence"
)

var (
	elementsPulled = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: pulledMetric,
		Help: "The total number of elements pulled from an ordered sequence",
	}, []string{sequenceLabel})

	sequencesExhausted = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: exhaustedMetric,
		Help: "The total number of ordered sequences that ran to their end",
	}, []string{sequenceLabel})
)

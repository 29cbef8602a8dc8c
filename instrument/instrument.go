// Package instrument counts the traffic through ordered sequences with
// prometheus counters, labelled by a caller chosen sequence name.
package instrument

import (
	"cmp"
	"slices"

	"github.com/havoc-io/ordered-iter/ordered"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// CountSet wraps s so every key pulled through it, and the end of the
// sequence, is counted under name.
func CountSet[K any](name string, s ordered.Set[K]) ordered.Set[K] {
	return ordered.NewSet[K](&countedSet[K]{
		it:      s,
		counter: newCounter(name),
	}, s.Compare())
}

// CountMap is CountSet for map sequences.
func CountMap[K, V any](name string, m ordered.Map[K, V]) ordered.Map[K, V] {
	return ordered.NewMap[K, V](&countedMap[K, V]{
		it:      m,
		counter: newCounter(name),
	}, m.Compare())
}

// counter holds the label-resolved metrics of one sequence.
type counter struct {
	pulled    prometheus.Counter
	exhausted prometheus.Counter
	done      bool
}

func newCounter(name string) counter {
	return counter{
		pulled:    elementsPulled.WithLabelValues(name),
		exhausted: sequencesExhausted.WithLabelValues(name),
	}
}

func (c *counter) observe(ok bool) {
	switch {
	case ok:
		c.pulled.Inc()
	case !c.done:
		c.done = true
		c.exhausted.Inc()
	}
}

type countedSet[K any] struct {
	it ordered.SetIterator[K]
	counter
}

func (c *countedSet[K]) Next() (K, bool) {
	key, ok := c.it.Next()
	c.observe(ok)

	return key, ok
}

func (c *countedSet[K]) Stop() {
	c.it.Stop()
}

type countedMap[K, V any] struct {
	it ordered.MapIterator[K, V]
	counter
}

func (c *countedMap[K, V]) Next() (K, V, bool) {
	key, value, ok := c.it.Next()
	c.observe(ok)

	return key, value, ok
}

func (c *countedMap[K, V]) Stop() {
	c.it.Stop()
}

// Stat is the running total for one named sequence.
type Stat struct {
	Sequence  string
	Pulled    float64
	Exhausted float64
}

// Snapshot reads the current totals of every named sequence from gatherer,
// sorted by name.
func Snapshot(gatherer prometheus.Gatherer) ([]Stat, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*Stat)

	for _, family := range families {
		var set func(*Stat, float64)

		switch family.GetName() {
		case pulledMetric:
			set = func(s *Stat, v float64) { s.Pulled = v }
		case exhaustedMetric:
			set = func(s *Stat, v float64) { s.Exhausted = v }
		default:
			continue
		}

		for _, metric := range family.GetMetric() {
			name := sequenceName(metric)

			stat, found := stats[name]
			if !found {
				stat = &Stat{Sequence: name}
				stats[name] = stat
			}

			set(stat, metric.GetCounter().GetValue())
		}
	}

	out := make([]Stat, 0, len(stats))
	for _, stat := range stats {
		out = append(out, *stat)
	}

	slices.SortFunc(out, func(a, b Stat) int {
		return cmp.Compare(a.Sequence, b.Sequence)
	})

	return out, nil
}

func sequenceName(metric *dto.Metric) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == sequenceLabel {
			return label.GetValue()
		}
	}

	return ""
}

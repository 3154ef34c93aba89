// Package metrics exports animation lifecycle counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-motion/internal/anim"
)

// Collector counts animation starts, ticks, and completions per label.
type Collector struct {
	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	ticks    *prometheus.CounterVec
	perRun   prometheus.Histogram
}

// NewCollector creates the motion metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "motion_animations_started_total",
				Help: "Animations armed by a director.",
			},
			[]string{"label"},
		),
		finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "motion_animations_finished_total",
				Help: "Animations that reached their end value.",
			},
			[]string{"label"},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "motion_ticks_total",
				Help: "Ticks written to animated properties.",
			},
			[]string{"label"},
		),
		perRun: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "motion_animation_ticks",
				Help:    "Ticks needed to finish an animation.",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120},
			},
		),
	}
	for _, col := range []prometheus.Collector{c.started, c.finished, c.ticks, c.perRun} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks that update the collector.
func (c *Collector) Hooks() anim.Hooks {
	return anim.Hooks{
		OnStart: func(e anim.Event) {
			c.started.WithLabelValues(labelOf(e)).Inc()
		},
		OnTick: func(e anim.Event) {
			c.ticks.WithLabelValues(labelOf(e)).Inc()
		},
		OnFinish: func(e anim.Event) {
			c.finished.WithLabelValues(labelOf(e)).Inc()
			c.perRun.Observe(float64(e.Ticks))
		},
	}
}

// Handler serves the metrics in g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func labelOf(e anim.Event) string {
	if e.Label == "" {
		return "unlabeled"
	}
	return e.Label
}

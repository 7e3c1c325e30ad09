package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRenders counts hero renders by form, resolved color style and layout
	MetricRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hero_renders_total",
		Help: "Total hero renders by form, color style and layout",
	}, []string{"form", "color_style", "layout"})

	// MetricRenderDuration tracks render duration per form
	MetricRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hero_render_duration_seconds",
		Help:    "Hero render duration in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}, []string{"form"})

	// MetricParityMismatches counts /parity requests whose two renditions differ
	MetricParityMismatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hero_parity_mismatches_total",
		Help: "Total parity endpoint checks that found differences, by preset",
	}, []string{"preset"})

	// MetricPresetLookups counts preset lookups by outcome
	MetricPresetLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hero_preset_lookups_total",
		Help: "Total preset lookups by outcome",
	}, []string{"outcome"})
)

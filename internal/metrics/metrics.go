package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	VenturesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVenturesPerformed,
			Help: HelpTextVenturesPerformed,
		},
	)

	EncountersResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersResolved,
			Help: HelpTextEncountersResolved,
		},
		[]string{LabelKind},
	)

	LootItemsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootItemsAwarded,
			Help: HelpTextLootItemsAwarded,
		},
		[]string{LabelItem},
	)

	FatedRerollsUsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFatedRerollsUsed,
			Help: HelpTextFatedRerollsUsed,
		},
	)

	ActorsKnockedOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameActorsKnockedOut,
			Help: HelpTextActorsKnockedOut,
		},
	)

	ActorsHealed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameActorsHealed,
			Help: HelpTextActorsHealed,
		},
	)
)

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

// Webhook Metrics
var (
	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWebhookEventsTotal,
			Help: HelpTextWebhookEventsTotal,
		},
		[]string{LabelEvent},
	)

	MalformedPayloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMalformedPayloads,
			Help: HelpTextMalformedPayloads,
		},
	)

	DuplicateDeliveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateDeliveries,
			Help: HelpTextDuplicateDeliveries,
		},
	)

	DispatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDispatchesTotal,
			Help: HelpTextDispatchesTotal,
		},
		[]string{LabelOutcome},
	)

	DispatchQueueDrops = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDispatchQueueDrops,
			Help: HelpTextDispatchQueueDrops,
		},
	)
)

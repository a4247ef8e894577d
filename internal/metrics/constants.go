package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Webhook metric names
const (
	MetricNameWebhookEventsTotal    = "webhook_events_total"
	MetricNameMalformedPayloads     = "webhook_malformed_payloads_total"
	MetricNameDuplicateDeliveries   = "webhook_duplicate_deliveries_total"
	MetricNameDispatchesTotal       = "bitrix_dispatches_total"
	MetricNameDispatchQueueDrops    = "dispatch_queue_drops_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Webhook metric help text
const (
	HelpTextWebhookEventsTotal  = "Total number of Bitrix24 webhook events received"
	HelpTextMalformedPayloads   = "Total number of webhook payloads rejected as malformed"
	HelpTextDuplicateDeliveries = "Total number of duplicate webhook deliveries suppressed"
	HelpTextDispatchesTotal     = "Total number of reply dispatches to Bitrix24"
	HelpTextDispatchQueueDrops  = "Total number of replies dropped because the dispatch queue was full"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelEvent   = "event"
	LabelOutcome = "outcome"
)

// Dispatch outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameVenturesPerformed  = "ventures_performed_total"
	MetricNameEncountersResolved = "encounters_resolved_total"
	MetricNameLootItemsAwarded   = "loot_items_awarded_total"
	MetricNameFatedRerollsUsed   = "fated_rerolls_used_total"
	MetricNameActorsKnockedOut   = "actors_knocked_out_total"
	MetricNameActorsHealed       = "actors_healed_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextVenturesPerformed  = "Total number of ventures performed"
	HelpTextEncountersResolved = "Total number of encounters resolved, by outcome kind"
	HelpTextLootItemsAwarded   = "Total quantity of loot items awarded"
	HelpTextFatedRerollsUsed   = "Total number of fated rerolls consumed"
	HelpTextActorsKnockedOut   = "Total number of actor knockouts"
	HelpTextActorsHealed       = "Total number of actor heals"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelItem   = "item"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

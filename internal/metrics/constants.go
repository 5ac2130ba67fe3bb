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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCropsHarvested    = "crops_harvested_total"
	MetricNameProductsCollected = "animal_products_collected_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameItemsBought       = "items_bought_total"
	MetricNameToolsUpgraded     = "tools_upgraded_total"
	MetricNameDaysEnded         = "days_ended_total"
	MetricNameLevelUps          = "player_level_ups_total"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCropsHarvested    = "Total number of crops harvested"
	HelpTextProductsCollected = "Total number of animal products collected"
	HelpTextItemsSold         = "Total number of items sold"
	HelpTextItemsBought       = "Total number of items bought"
	HelpTextToolsUpgraded     = "Total number of tool upgrades"
	HelpTextDaysEnded         = "Total number of day cycles completed"
	HelpTextLevelUps          = "Total number of player level ups"
	HelpTextMoneyEarned       = "Total money earned from selling"
	HelpTextMoneySpent        = "Total money spent buying"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelKind   = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

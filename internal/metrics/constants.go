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

// Business metric names
const (
	MetricNameItemsPurchased = "items_purchased_total"
	MetricNameItemsSold      = "items_sold_total"
	MetricNameItemsEquipped  = "items_equipped_total"
	MetricNameWorkPerformed  = "work_performed_total"
	MetricNameMoneyEarned    = "money_earned_total"
	MetricNameMoneySpent     = "money_spent_total"
)

// Cache metric names
const (
	MetricNameCatalogCacheHits   = "catalog_cache_hits_total"
	MetricNameCatalogCacheMisses = "catalog_cache_misses_total"
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

// Business metric help text
const (
	HelpTextItemsPurchased = "Total number of items purchased from the shop"
	HelpTextItemsSold      = "Total number of items sold back to the shop"
	HelpTextItemsEquipped  = "Total number of items equipped"
	HelpTextWorkPerformed  = "Total number of work actions performed"
	HelpTextMoneyEarned    = "Total money credited by sells and work"
	HelpTextMoneySpent     = "Total money debited by purchases"
)

// Cache metric help text
const (
	HelpTextCatalogCacheHits   = "Total catalog lookups served from the cache"
	HelpTextCatalogCacheMisses = "Total catalog lookups that fell through to the database"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

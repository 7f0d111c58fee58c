package dto

import "time"

// SystemMetrics is a lightweight aggregate snapshot for the status endpoint,
// complementing the full Prometheus exposition.
type SystemMetrics struct {
	ActiveSessions           int       `json:"active_sessions"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	CatalogQueryCount        uint64    `json:"catalog_query_count"`
	AverageCatalogQueryMs    float64   `json:"average_catalog_query_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

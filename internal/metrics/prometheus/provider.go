package prometheus

import (
	"strconv"
	"time"

	"portfolio-content-service/internal/metrics"
)

type MetricsProvider struct{}

func NewMetricsProvider() metrics.Provider {
	return &MetricsProvider{}
}

func (p *MetricsProvider) IncrementHTTPRequests(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (p *MetricsProvider) RecordHTTPRequestDuration(method, path string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementCacheHits() {
	CacheHitsTotal.Inc()
}

func (p *MetricsProvider) IncrementCacheMisses() {
	CacheMissesTotal.Inc()
}

func (p *MetricsProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {
	CacheOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementSectionOperations(operation string, success bool) {
	SectionOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) IncrementAttachmentOperations(operation string, success bool) {
	AttachmentOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) IncrementReorderStrategy(strategy string) {
	ReorderStrategyTotal.WithLabelValues(strategy).Inc()
}

func (p *MetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}

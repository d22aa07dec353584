package metrics

import "time"

type Provider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementSectionOperations(operation string, success bool)
	IncrementAttachmentOperations(operation string, success bool)
	IncrementReorderStrategy(strategy string)

	SetServiceHealth(healthy bool)
}

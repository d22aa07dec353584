package metrics

import "time"

// NoopProvider discards all metrics. Used in tests and as a default
// when no provider is wired.
type NoopProvider struct{}

func NewNoopProvider() Provider { return &NoopProvider{} }

func (NoopProvider) IncrementHTTPRequests(method, path, status string)                     {}
func (NoopProvider) RecordHTTPRequestDuration(method, path string, duration time.Duration) {}
func (NoopProvider) IncrementDatabaseQueries(queryType string, success bool)               {}
func (NoopProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration)  {}
func (NoopProvider) IncrementCacheHits()                                                   {}
func (NoopProvider) IncrementCacheMisses()                                                 {}
func (NoopProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {}
func (NoopProvider) IncrementSectionOperations(operation string, success bool)             {}
func (NoopProvider) IncrementAttachmentOperations(operation string, success bool)          {}
func (NoopProvider) IncrementReorderStrategy(strategy string)                              {}
func (NoopProvider) SetServiceHealth(healthy bool)                                         {}

// Package metrics provides the Prometheus collectors shared across the API.
//
// All collectors are registered with the default registry and exposed on
// /metrics.
//
// Example usage:
//
//	start := time.Now()
//	n, err := coll.CountDocuments(ctx, filter)
//	metrics.RecordStoreOperation("count", time.Since(start), err)
package metrics

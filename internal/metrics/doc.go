// Package metrics provides in-process request metrics for the service.
//
// It uses a channel-based event pipeline to asynchronously collect, per
// route pattern:
//   - Request counts
//   - Extraction rejections
//   - Response times with percentile calculations (P50, P95, P99)
//   - HTTP status code distribution
//
// The collector runs in a dedicated goroutine. Emit never blocks the request
// path; events are dropped when the buffer is full. On context cancellation
// the collector drains whatever is still buffered.
//
// Example usage:
//
//	collector := metrics.NewCollector(1000, logger)
//	collector.Start(ctx)
//
//	collector.Emit(metrics.MetricEvent{
//		Type:       metrics.EventResponseCompleted,
//		Route:      "/{clientID}",
//		Duration:   150 * time.Millisecond,
//		StatusCode: 200,
//	})
//
//	snapshot := collector.Snapshot()
package metrics

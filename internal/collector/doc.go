// Package collector implements the concurrent fan-out at the heart of
// routeaudit: one route fetch per namespace, executed over a bounded worker
// pool, with per-namespace failure containment and a complete, deterministic
// result set.
//
// # Model
//
// Each namespace moves through Pending -> InFlight -> terminal. At most
// "workers" fetches are in flight at once; as each completes, its slot is
// refilled from the pending queue. The run terminates only when every
// namespace has reached a terminal state. There is no early exit on
// failure: a namespace whose fetch fails, times out, or panics is recorded
// as a failed Outcome while its siblings continue undisturbed.
//
// # Usage
//
//	c := collector.New(10, logger,
//	    collector.WithFetchTimeout(15*time.Second),
//	    collector.WithProgress(func(ns string, phase collector.Phase) {
//	        logger.Debug("fetch progress", "namespace", ns, "phase", phase)
//	    }))
//
//	report, outcomes := c.Collect(ctx, fetcher, namespaces)
//
// The returned Report contains exactly one entry per input namespace, with
// failed fetches mapped to an empty route list. The Outcome slice, in
// submission order, keeps the failure detail for diagnostics.
//
// # Concurrency guarantees
//
//   - In-flight fetches never exceed the configured worker count
//   - A worker count of 1 reproduces sequential collection
//   - Completion order is non-deterministic; outcome ordering is not
//   - Progress callbacks are observational and never affect scheduling
//   - All collector bookkeeping is serialized through channels owned by
//     the executing goroutine; fetches are the only blocking operations
package collector

// Package observe provides ready-made seq.Observer implementations.
//
//   - Recorder keeps a snapshot of every notification, for tests and replay.
//   - Counter counts notifications and remembers the ranges it was given.
//   - Paced blocks each notification on a rate limiter so the sort advances
//     at a fixed frame rate.
//   - Logged writes each notification to a zap logger at debug level.
//   - Metrics exports notification counts and run durations to Prometheus.
//
// Observers compose with seq.Multi:
//
//	m := observe.NewMetrics(prometheus.NewRegistry())
//	obs := seq.Multi[int](
//	    observe.NewPaced[int](ctx, 60, renderer),
//	    observe.Observer[int](m, "bubble"),
//	)
package observe

// Package consumer subscribes to bus channels and renders records
// into durable output.
//
// A consumer attaches once: Attach subscribes its Handle callback to
// every channel at or above the consumer's threshold, so Handle never
// re-checks the level. Detach removes exactly those subscriptions and
// is idempotent. Concrete consumers embed Base, which carries this
// bookkeeping; Base's own Handle fails with core.ErrUnimplemented.
//
// JSON is the built-in consumer. It writes one newline-terminated
// object per record with keys level, time (integer epoch-ms), and msg
// first, then the flattened extra keys. When a key appears in several
// sources the later source wins: static fields, then the record's
// bindings, then the record's own fields.
//
// SlogBridge adapts the other direction: it is a slog.Handler that
// publishes onto a registry, letting standard-library callers feed
// the same channels.
package consumer

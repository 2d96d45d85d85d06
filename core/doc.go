// Package core defines the shared types used across logbus.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, the Fields map alias, and the
// typed errors raised on malformed construction or calls.
//
// Levels are a fixed six-step scale (trace=10 .. fatal=60); a level is
// enabled against a threshold iff its weight is at least the
// threshold's weight. Because weights grow with the index, ordinary
// index comparison answers the same question without a table lookup.
//
// Record objects are pooled via sync.Pool so the enabled path stays
// cheap. Producers get a Record with GetRecord and return it with
// PutRecord once every subscribed consumer has run; consumers execute
// synchronously on the producer's stack and must not retain a Record.
//
// The optional coarse clock caches an epoch-millisecond timestamp in
// the background so hot producers can trade sub-millisecond accuracy
// for one atomic load per record.
package core

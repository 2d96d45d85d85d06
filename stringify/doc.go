// Package stringify converts arbitrary values to JSON-compatible text
// with a dual-path design.
//
// A value is classified once by an explicit structural walk: values
// composed transitively of primitives, []any, map[string]any, and the
// common concrete primitive containers are "plain" and serialize on an
// inlined fast path built from append-style helpers. Everything else —
// custom types, pointers, cycles — defers to the rich fallback, which
// marshals through segmentio/encoding.
//
// The classification is deliberate: detecting the fast path by
// attempting a conversion and recovering on failure would swallow
// unrelated panics, so the walk decides up front. Cyclic plain
// containers are caught by identity tracking during the walk and
// render as the "[Circular]" marker instead of recursing.
//
// AppendQuote and AppendEscaped expose the JSON escape loop for
// callers that assemble their own objects, such as the JSON consumer.
package stringify

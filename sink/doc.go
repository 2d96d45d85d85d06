// Package sink abstracts byte-level log destinations.
//
// A Sink is an io.Writer with explicit flush semantics: Flush drains
// userspace buffering, FlushSync forces data to stable storage, Close
// flushes and releases. Resolve accepts the destination shapes the
// public options take — a descriptor number, a path string, an
// io.Writer, or a prebuilt Sink — and defaults to standard output.
//
// File-backed sinks buffer through bufio; descriptor and writer sinks
// write straight through. Standard output and standard error are never
// closed by their sinks.
package sink

// Package console batches high-volume ad-hoc text writes to cut
// output-syscall overhead.
//
// The Scheduler is the core: an unbounded FIFO of (destination, text)
// entries accumulated until the first trigger fires — 16 KiB of
// pending bytes, 100 entries, or a 16 ms deadline — then drained as
// one atomic batch by a single worker goroutine. Entering a cycle
// arms both an immediate wakeup and the deadline timer; the first to
// fire flushes and the other is disarmed, which bounds worst-case
// latency without hurting the best case. The deadline is soft: actual
// wall-clock delay depends on the Go scheduler.
//
// The Console façade layers console-style calls on top. Log, Info,
// and Debug enqueue; Warn and Error never enter the queue — they are
// written synchronously to the err destination (colored when it is a
// terminal) so they survive a crash immediately after the call.
//
// A Console owns its Scheduler; nothing is shared between instances.
// One instance is safe for concurrent use.
package console

package console

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/mertcanaltin/logbus/sink"
)

const (
	// DefaultHighWater is the cumulative-byte threshold that forces a
	// flush mid-accumulation.
	DefaultHighWater = 16 * 1024
	// DefaultMaxEntries is the queued-entry count that forces a flush.
	DefaultMaxEntries = 100
	// DefaultDeadline bounds how long an accumulation cycle may run
	// before the batch is flushed regardless of size.
	DefaultDeadline = 16 * time.Millisecond
)

// SchedulerConfig overrides the flush triggers. Zero values take the
// defaults.
type SchedulerConfig struct {
	HighWater  int
	MaxEntries int
	Deadline   time.Duration
}

// SchedulerStats is a snapshot of scheduler activity. Flushes counts
// non-empty batches only.
type SchedulerStats struct {
	Flushes uint64
	Entries uint64
	Bytes   uint64
}

type entry struct {
	dst  sink.Sink
	text []byte
}

// Scheduler batches ad-hoc write requests into size- and time-bounded
// flushes. Enqueue never blocks; the queue accumulates until the
// first trigger fires — cumulative bytes, entry count, or the
// deadline — and the whole queue is then drained as one atomic batch.
// Entries arriving during a drain start the next cycle.
//
// Two triggers are armed when a cycle begins: an as-soon-as-possible
// wakeup and a hard-deadline timer. Whichever fires first performs
// the flush; the loser is disarmed. There is no admission control —
// the high-water mark bounds memory by forcing a flush, never by
// rejecting input.
type Scheduler struct {
	cfg SchedulerConfig

	mu     sync.Mutex
	queue  []entry
	bytes  int
	closed bool

	wake  chan struct{}
	timer *time.Timer
	done  chan struct{}
	wg    sync.WaitGroup

	flushes atomic.Uint64
	entries atomic.Uint64
	nbytes  atomic.Uint64
}

// NewScheduler starts a scheduler and its worker goroutine.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	if cfg.HighWater <= 0 {
		cfg.HighWater = DefaultHighWater
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.Deadline <= 0 {
		cfg.Deadline = DefaultDeadline
	}
	s := &Scheduler{
		cfg:   cfg,
		wake:  make(chan struct{}, 1),
		timer: time.NewTimer(time.Hour),
		done:  make(chan struct{}),
	}
	if !s.timer.Stop() {
		<-s.timer.C
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Enqueue appends one write request and returns immediately. After
// Close the scheduler degrades to direct synchronous writes so late
// output is never lost.
func (s *Scheduler) Enqueue(dst sink.Sink, text []byte) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		dst.Write(text)
		return
	}
	first := len(s.queue) == 0
	s.queue = append(s.queue, entry{dst: dst, text: text})
	s.bytes += len(text)
	crossed := s.bytes >= s.cfg.HighWater || len(s.queue) >= s.cfg.MaxEntries
	if first {
		// entering Accumulating: arm both the deadline and the wakeup
		s.timer.Reset(s.cfg.Deadline)
	}
	if first || crossed {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
	s.mu.Unlock()
}

// Stats returns a snapshot of activity counters.
func (s *Scheduler) Stats() SchedulerStats {
	return SchedulerStats{
		Flushes: s.flushes.Load(),
		Entries: s.entries.Load(),
		Bytes:   s.nbytes.Load(),
	}
}

// Close forces a final flush and stops the worker. Idempotent.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	close(s.done)
	s.wg.Wait()
	return nil
}

func (s *Scheduler) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.wake:
			s.flush()
		case <-s.timer.C:
			s.flush()
		case <-s.done:
			s.flush()
			return
		}
	}
}

// flush swaps the whole queue out under the lock — the batch is
// atomic — then writes it without holding the lock so producers keep
// enqueueing into the next cycle.
func (s *Scheduler) flush() {
	s.mu.Lock()
	batch := s.queue
	total := s.bytes
	s.queue = nil
	s.bytes = 0
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
	s.mu.Unlock()

	if len(batch) == 0 {
		// stale wakeup from a trigger that lost the race
		return
	}

	var prev sink.Sink
	for _, e := range batch {
		e.dst.Write(e.text)
		if prev != nil && prev != e.dst {
			prev.Flush()
		}
		prev = e.dst
	}
	if prev != nil {
		prev.Flush()
	}

	s.flushes.Add(1)
	s.entries.Add(uint64(len(batch)))
	s.nbytes.Add(uint64(total))
}

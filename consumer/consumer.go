package consumer

import (
	"sync"

	"github.com/mertcanaltin/logbus/bus"
	"github.com/mertcanaltin/logbus/core"
)

// Consumer renders records published on a registry into a side effect.
// Handle must not re-check the record's level: subscription already
// guarantees only records at or above the consumer's threshold arrive.
type Consumer interface {
	Handle(rec *core.Record) error
	Level() core.Level
}

// Base carries the threshold and attachment bookkeeping shared by
// concrete consumers. Embed it and override Handle; the Base Handle
// itself fails with core.ErrUnimplemented so an unembellished Base is
// loudly unusable.
type Base struct {
	level    core.Level
	mu       sync.Mutex
	registry *bus.Registry
	tokens   []bus.Token
}

// NewBase returns a Base filtering below level.
func NewBase(level core.Level) Base {
	return Base{level: level}
}

// Level returns the consumer's threshold.
func (b *Base) Level() core.Level {
	return b.level
}

// Handle is the abstract default; concrete consumers override it.
func (b *Base) Handle(*core.Record) error {
	return core.ErrUnimplemented
}

func (b *Base) base() *Base { return b }

// Attach subscribes c.Handle to every channel at or above c's
// threshold, exactly once. Attaching an already-attached consumer is a
// no-op; attach to a second registry requires Detach first.
func Attach(reg *bus.Registry, c Consumer) {
	b := c.(interface{ base() *Base }).base()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.registry != nil {
		return
	}
	for l := c.Level(); l <= core.FatalLevel; l++ {
		b.tokens = append(b.tokens, reg.Subscribe(l, c.Handle))
	}
	b.registry = reg
}

// Detach removes exactly the subscriptions Attach added. It is
// idempotent.
func (b *Base) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.registry == nil {
		return
	}
	for _, t := range b.tokens {
		b.registry.Unsubscribe(t)
	}
	b.tokens = nil
	b.registry = nil
}

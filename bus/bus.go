package bus

import (
	"sync"
	"sync/atomic"

	"github.com/mertcanaltin/logbus/core"
)

// Handler is a subscriber callback invoked for every record published
// on a channel.
type Handler func(*core.Record) error

// Channel is the publish/subscribe bus for a single level. Subscribers
// are invoked synchronously in subscription order.
type Channel struct {
	mu    sync.RWMutex
	subs  []subscription
	count atomic.Int32
}

type subscription struct {
	id uint64
	fn Handler
}

// HasSubscribers reports whether at least one callback is attached.
// Producers consult this before building a Record so that a channel
// nobody listens to costs a single atomic load.
func (c *Channel) HasSubscribers() bool {
	return c.count.Load() > 0
}

// Publish delivers rec to every attached callback in subscription
// order. With zero subscribers it is an O(1) no-op. When several
// callbacks fail, the last error wins.
func (c *Channel) Publish(rec *core.Record) error {
	if c.count.Load() == 0 {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var lastErr error
	for _, s := range c.subs {
		if err := s.fn(rec); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (c *Channel) subscribe(id uint64, fn Handler) {
	c.mu.Lock()
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	c.mu.Unlock()
	c.count.Add(1)
}

func (c *Channel) unsubscribe(id uint64) {
	c.mu.Lock()
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			c.mu.Unlock()
			c.count.Add(-1)
			return
		}
	}
	c.mu.Unlock()
}

// Token identifies one subscription for later removal.
type Token struct {
	level core.Level
	id    uint64
}

// Registry holds one Channel per level. Channels are created lazily on
// first subscription and live until process exit; there is no
// teardown. Tests construct their own Registry instead of touching the
// process-wide default.
type Registry struct {
	mu       sync.Mutex
	channels [core.NumLevels]atomic.Pointer[Channel]
	nextID   atomic.Uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, created on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Lookup returns the channel for level, or nil if nothing ever
// subscribed at that level. The nil return lets producers skip record
// construction without allocating a channel.
func (r *Registry) Lookup(level core.Level) *Channel {
	if level < 0 || int(level) >= core.NumLevels {
		return nil
	}
	return r.channels[level].Load()
}

// Channel returns the channel for level, creating it if needed.
func (r *Registry) Channel(level core.Level) *Channel {
	if ch := r.channels[level].Load(); ch != nil {
		return ch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch := r.channels[level].Load(); ch != nil {
		return ch
	}
	ch := &Channel{}
	r.channels[level].Store(ch)
	return ch
}

// HasSubscribers reports whether the channel for level exists and has
// at least one subscriber.
func (r *Registry) HasSubscribers(level core.Level) bool {
	ch := r.Lookup(level)
	return ch != nil && ch.HasSubscribers()
}

// Subscribe attaches fn to the channel for level and returns a token
// for Unsubscribe.
func (r *Registry) Subscribe(level core.Level, fn Handler) Token {
	id := r.nextID.Add(1)
	r.Channel(level).subscribe(id, fn)
	return Token{level: level, id: id}
}

// Unsubscribe removes exactly the subscription the token identifies.
// Unsubscribing twice, or with a zero token, is a no-op.
func (r *Registry) Unsubscribe(t Token) {
	if t.id == 0 {
		return
	}
	if ch := r.Lookup(t.level); ch != nil {
		ch.unsubscribe(t.id)
	}
}

// Publish delivers rec on the channel matching its level.
func (r *Registry) Publish(rec *core.Record) error {
	ch := r.Lookup(rec.Level)
	if ch == nil {
		return nil
	}
	return ch.Publish(rec)
}

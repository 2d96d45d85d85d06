package consumer

import (
	"sort"
	"strconv"
	"sync"

	"github.com/mertcanaltin/logbus/bus"
	"github.com/mertcanaltin/logbus/core"
	"github.com/mertcanaltin/logbus/sink"
	"github.com/mertcanaltin/logbus/stringify"
)

// Options configures a consumer.
type Options struct {
	// Level is the threshold name (default "info").
	Level string
	// Stream is the destination: a descriptor number, a path string,
	// an io.Writer, or a prebuilt sink.Sink (default standard output).
	Stream any
	// Fields are static fields rendered into every line.
	Fields core.Fields
}

// JSON renders records as single-line, newline-terminated JSON
// objects: level, time (epoch-ms integer), msg, then the flattened
// extra keys with precedence staticFields < bindings < record fields.
type JSON struct {
	Base
	sink       sink.Sink
	static     core.Fields
	staticKeys []string

	mu   sync.Mutex
	buf  []byte
	keys []string
}

// NewJSON builds a JSON consumer. The level name is validated here;
// the destination is resolved through sink.Resolve.
func NewJSON(opts Options) (*JSON, error) {
	level := core.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = core.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
	}
	s, err := sink.Resolve(opts.Stream)
	if err != nil {
		return nil, err
	}
	c := &JSON{
		Base: NewBase(level),
		sink: s,
		buf:  make([]byte, 0, 256),
	}
	if len(opts.Fields) > 0 {
		c.static = make(core.Fields, len(opts.Fields))
		for k, v := range opts.Fields {
			c.static[k] = v
			c.staticKeys = append(c.staticKeys, k)
		}
		sort.Strings(c.staticKeys)
	}
	return c, nil
}

// Attach subscribes the consumer on reg.
func (c *JSON) Attach(reg *bus.Registry) {
	Attach(reg, c)
}

// Handle serializes rec and writes it to the sink. Write errors are
// returned to the publisher, never suppressed.
func (c *JSON) Handle(rec *core.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = c.appendRecord(c.buf[:0], rec)
	_, err := c.sink.Write(c.buf)
	return err
}

// Flush delegates to the sink.
func (c *JSON) Flush() error {
	return c.sink.Flush()
}

// FlushSync delegates to the sink.
func (c *JSON) FlushSync() error {
	return c.sink.FlushSync()
}

// End detaches the consumer and flushes and closes the sink,
// forwarding any flush error to the caller.
func (c *JSON) End() error {
	c.Detach()
	return c.sink.Close()
}

// lookup resolves key against the merge sources, later source wins:
// record fields over bindings over static fields.
func (c *JSON) lookup(rec *core.Record, key string) (any, bool) {
	if v, ok := rec.Fields[key]; ok {
		return v, true
	}
	if v, ok := rec.Bindings[key]; ok {
		return v, true
	}
	if v, ok := c.static[key]; ok {
		return v, true
	}
	return nil, false
}

func (c *JSON) appendRecord(dst []byte, rec *core.Record) []byte {
	dst = append(dst, `{"level":`...)
	if v, ok := c.lookup(rec, "level"); ok {
		dst = stringify.Append(dst, v)
	} else {
		dst = stringify.AppendQuote(dst, rec.Level.String())
	}
	dst = append(dst, `,"time":`...)
	if v, ok := c.lookup(rec, "time"); ok {
		dst = stringify.Append(dst, v)
	} else {
		dst = strconv.AppendInt(dst, rec.Time, 10)
	}
	dst = append(dst, `,"msg":`...)
	// rec.Fields never holds "msg", so only bindings or static fields
	// can override here.
	if v, ok := c.lookup(rec, "msg"); ok {
		dst = stringify.Append(dst, v)
	} else {
		dst = stringify.AppendQuote(dst, rec.Msg)
	}

	// Flattened extras: static keys first, then the per-record keys in
	// sorted order, values resolved through lookup so a later source
	// overwrites an earlier key without duplicating it.
	c.keys = c.keys[:0]
	c.keys = append(c.keys, c.staticKeys...)
	c.keys = appendKeys(c.keys, rec.Bindings)
	c.keys = appendKeys(c.keys, rec.Fields)
	n := len(c.staticKeys)
	sort.Strings(c.keys[n:])

	for i, key := range c.keys {
		if key == "level" || key == "time" || key == "msg" {
			continue
		}
		if seenBefore(c.keys[:i], key) {
			continue
		}
		v, _ := c.lookup(rec, key)
		dst = append(dst, ',')
		dst = stringify.AppendQuote(dst, key)
		dst = append(dst, ':')
		dst = stringify.Append(dst, v)
	}
	return append(dst, '}', '\n')
}

func appendKeys(dst []string, m core.Fields) []string {
	for k := range m {
		dst = append(dst, k)
	}
	return dst
}

func seenBefore(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

package console

import (
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/mertcanaltin/logbus/sink"
	"github.com/mertcanaltin/logbus/stringify"
)

const (
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// Console is a console-style façade: Log/Info/Debug lines go through
// the buffered scheduler toward the out destination, while Warn and
// Error bypass the queue entirely and are written synchronously to
// the err destination — throughput traded for guaranteed visibility
// if the process dies right after the write.
type Console struct {
	out   sink.Sink
	err   sink.Sink
	sched *Scheduler
	color bool
}

// New builds a Console. Destinations take the sink.Resolve shapes;
// nil means standard output and standard error. Warn/Error output is
// colored when the err destination is a terminal.
func New(outDst, errDst any) (*Console, error) {
	return NewWithConfig(outDst, errDst, SchedulerConfig{})
}

// NewWithConfig is New with explicit scheduler triggers.
func NewWithConfig(outDst, errDst any, cfg SchedulerConfig) (*Console, error) {
	out, err := sink.Resolve(outDst)
	if err != nil {
		return nil, err
	}
	errSink, err := sink.Resolve(errDst)
	if err != nil {
		return nil, err
	}
	return &Console{
		out:   out,
		err:   errSink,
		sched: NewScheduler(cfg),
		color: isTerminal(errDst),
	}, nil
}

// isTerminal decides the color gate once, at construction.
func isTerminal(dst any) bool {
	switch d := dst.(type) {
	case nil:
		return term.IsTerminal(int(os.Stderr.Fd()))
	case *os.File:
		return term.IsTerminal(int(d.Fd()))
	case int:
		return term.IsTerminal(d)
	default:
		return false
	}
}

// Log enqueues a line for the out destination.
func (c *Console) Log(args ...any) {
	c.sched.Enqueue(c.out, formatLine(nil, args))
}

// Info is an alias for Log.
func (c *Console) Info(args ...any) {
	c.Log(args...)
}

// Debug enqueues a line for the out destination.
func (c *Console) Debug(args ...any) {
	c.Log(args...)
}

// Warn writes a line synchronously to the err destination.
func (c *Console) Warn(args ...any) {
	c.direct(colorYellow, args)
}

// Error writes a line synchronously to the err destination.
func (c *Console) Error(args ...any) {
	c.direct(colorRed, args)
}

func (c *Console) direct(color string, args []any) {
	var line []byte
	if c.color {
		line = append(line, color...)
		line = formatArgs(line, args)
		line = append(line, colorReset...)
		line = append(line, '\n')
	} else {
		line = formatLine(line, args)
	}
	c.err.Write(line)
}

// Stats exposes the scheduler counters.
func (c *Console) Stats() SchedulerStats {
	return c.sched.Stats()
}

// Close flushes the pending batch and both destinations. Call it at
// process shutdown; buffered lines are otherwise only as durable as
// the 16 ms deadline.
func (c *Console) Close() error {
	err := c.sched.Close()
	if e := c.out.Flush(); err == nil {
		err = e
	}
	if e := c.err.Flush(); err == nil {
		err = e
	}
	return err
}

// formatLine renders args space-joined and newline-terminated.
// Top-level strings print bare; everything else goes through
// stringify.
func formatLine(dst []byte, args []any) []byte {
	dst = formatArgs(dst, args)
	return append(dst, '\n')
}

func formatArgs(dst []byte, args []any) []byte {
	for i, a := range args {
		if i > 0 {
			dst = append(dst, ' ')
		}
		if s, ok := a.(string); ok {
			dst = append(dst, s...)
			continue
		}
		dst = stringify.Append(dst, a)
	}
	return dst
}

var (
	defaultOnce    sync.Once
	defaultConsole *Console
)

// Default returns the process console on standard output and standard
// error, created on first use.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultConsole, _ = New(nil, nil)
	})
	return defaultConsole
}

// Log writes to the default console's buffered out stream.
func Log(args ...any) { Default().Log(args...) }

// Warn writes synchronously to the default console's err stream.
func Warn(args ...any) { Default().Warn(args...) }

// Error writes synchronously to the default console's err stream.
func Error(args ...any) { Default().Error(args...) }

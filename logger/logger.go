package logger

import (
	"fmt"

	"github.com/mertcanaltin/logbus/bus"
	"github.com/mertcanaltin/logbus/core"
)

// Options configures a Logger.
type Options struct {
	// Level is the threshold name (default "info").
	Level string
	// Bindings is the inherited context rendered into every record.
	Bindings core.Fields
	// Registry is the channel registry to publish on (default the
	// process-wide bus.Default()).
	Registry *bus.Registry
	// Clock returns the current epoch-millisecond timestamp (default
	// core.NowMillis; core.CoarseNow trades accuracy for speed).
	Clock func() int64
}

// Logger produces records. It is immutable after construction: the
// threshold, the gate derived from it, and the bindings snapshot are
// set once, which makes it safe for concurrent use without locking.
type Logger struct {
	level    core.Level
	gate     uint8
	bindings core.Fields
	registry *bus.Registry
	clock    func() int64
}

// New builds a Logger. An unrecognized level name fails with
// *core.InvalidLevelError.
func New(opts Options) (*Logger, error) {
	level := core.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = core.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
	}
	registry := opts.Registry
	if registry == nil {
		registry = bus.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.NowMillis
	}
	var bindings core.Fields
	if len(opts.Bindings) > 0 {
		bindings = make(core.Fields, len(opts.Bindings))
		for k, v := range opts.Bindings {
			bindings[k] = v
		}
	}
	return &Logger{
		level:    level,
		gate:     gateFor(level),
		bindings: bindings,
		registry: registry,
		clock:    clock,
	}, nil
}

// gateFor computes the enabled-level bitmap once, at construction.
// The per-call decision is a single constant mask test.
func gateFor(threshold core.Level) uint8 {
	var g uint8
	for l := threshold; l <= core.FatalLevel; l++ {
		g |= 1 << uint(l)
	}
	return g
}

// Level returns the logger's threshold.
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether records at level pass the gate.
func (l *Logger) Enabled(level core.Level) bool {
	return l.gate&(1<<uint(level)) != 0
}

// Trace logs at trace level.
func (l *Logger) Trace(input any, fields ...core.Fields) {
	if l.gate&(1<<uint(core.TraceLevel)) == 0 {
		return
	}
	l.emit(core.TraceLevel, input, fields)
}

// Debug logs at debug level.
func (l *Logger) Debug(input any, fields ...core.Fields) {
	if l.gate&(1<<uint(core.DebugLevel)) == 0 {
		return
	}
	l.emit(core.DebugLevel, input, fields)
}

// Info logs at info level.
func (l *Logger) Info(input any, fields ...core.Fields) {
	if l.gate&(1<<uint(core.InfoLevel)) == 0 {
		return
	}
	l.emit(core.InfoLevel, input, fields)
}

// Warn logs at warn level.
func (l *Logger) Warn(input any, fields ...core.Fields) {
	if l.gate&(1<<uint(core.WarnLevel)) == 0 {
		return
	}
	l.emit(core.WarnLevel, input, fields)
}

// Error logs at error level.
func (l *Logger) Error(input any, fields ...core.Fields) {
	if l.gate&(1<<uint(core.ErrorLevel)) == 0 {
		return
	}
	l.emit(core.ErrorLevel, input, fields)
}

// Fatal logs at fatal level. It does not terminate the process;
// severity is the caller's signal, exit is the caller's decision.
func (l *Logger) Fatal(input any, fields ...core.Fields) {
	l.emit(core.FatalLevel, input, fields)
}

// emit classifies the input, consults the channel, and publishes.
// Input classification happens before the subscriber check so a
// malformed call fails at the call boundary regardless of listeners;
// everything that allocates waits until a subscriber is known.
func (l *Logger) emit(level core.Level, input any, fields []core.Fields) {
	msg, extras, errInput := classify(input, fields)

	ch := l.registry.Lookup(level)
	if ch == nil || !ch.HasSubscribers() {
		return
	}

	var call core.Fields
	if len(fields) == 1 {
		call = fields[0]
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Msg = msg
	rec.Time = l.clock()
	rec.Bindings = l.bindings
	mergeCallFields(rec.Fields, extras)
	if errInput != nil {
		rec.Fields["err"] = SerializeError(errInput)
	}
	mergeCallFields(rec.Fields, call)

	// Sink failures travel consumer-side; the producer call does not
	// report them.
	_ = ch.Publish(rec)
	core.PutRecord(rec)
}

// classify resolves the polymorphic input once, at the call boundary:
// a plain message string, a structured map carrying "msg", or an
// error. Malformed calls panic with *core.InvalidArgumentError.
func classify(input any, fields []core.Fields) (msg string, extras core.Fields, errInput error) {
	if len(fields) > 1 {
		panic(&core.InvalidArgumentError{Reason: "at most one fields map may follow the input"})
	}
	switch v := input.(type) {
	case string:
		return v, nil, nil
	case core.Fields:
		return classifyStructured(v)
	case map[string]any:
		return classifyStructured(v)
	case error:
		return v.Error(), nil, v
	default:
		panic(&core.InvalidArgumentError{Reason: fmt.Sprintf("unsupported input type %T", input)})
	}
}

func classifyStructured(m core.Fields) (string, core.Fields, error) {
	raw, ok := m["msg"]
	if !ok {
		panic(&core.InvalidArgumentError{Reason: `structured message missing "msg"`})
	}
	s, ok := raw.(string)
	if !ok {
		panic(&core.InvalidArgumentError{Reason: `structured message "msg" must be a string`})
	}
	return s, m, nil
}

// mergeCallFields copies src into dst, upholding the Record invariant
// that "msg" never lands in Fields and serializing an error-like
// "err" value on the way in.
func mergeCallFields(dst, src core.Fields) {
	for k, v := range src {
		if k == "msg" {
			continue
		}
		if k == "err" {
			if e, ok := v.(error); ok {
				dst[k] = SerializeError(e)
				continue
			}
		}
		dst[k] = v
	}
}

package logger

import "github.com/mertcanaltin/logbus/core"

type childOptions struct {
	level    string
	hasLevel bool
}

// ChildOption adjusts Child construction.
type ChildOption func(*childOptions)

// WithLevel overrides the child's threshold instead of inheriting the
// parent's.
func WithLevel(name string) ChildOption {
	return func(o *childOptions) {
		o.level = name
		o.hasLevel = true
	}
}

// Child returns an independent Logger whose bindings are the shallow
// merge of the parent's and the given map, child keys winning ties.
// Parent and child share no mutable state and hold no reference to
// each other; constructing or using one never affects the other.
func (l *Logger) Child(bindings core.Fields, opts ...ChildOption) (*Logger, error) {
	var o childOptions
	for _, opt := range opts {
		opt(&o)
	}

	level := l.level
	if o.hasLevel {
		var err error
		level, err = core.ParseLevel(o.level)
		if err != nil {
			return nil, err
		}
	}

	merged := make(core.Fields, len(l.bindings)+len(bindings))
	for k, v := range l.bindings {
		merged[k] = v
	}
	for k, v := range bindings {
		merged[k] = v
	}

	return &Logger{
		level:    level,
		gate:     gateFor(level),
		bindings: merged,
		registry: l.registry,
		clock:    l.clock,
	}, nil
}

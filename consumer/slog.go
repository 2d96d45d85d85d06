package consumer

import (
	"context"
	"log/slog"

	"github.com/mertcanaltin/logbus/bus"
	"github.com/mertcanaltin/logbus/core"
)

// SlogBridge is a slog.Handler that publishes records onto a bus
// registry, so code logging through the standard library feeds the
// same channels as native producers.
type SlogBridge struct {
	registry *bus.Registry
	level    core.Level
	attrs    core.Fields
	group    string
}

// NewSlogBridge returns a bridge publishing on reg at or above level.
func NewSlogBridge(reg *bus.Registry, level core.Level) *SlogBridge {
	return &SlogBridge{
		registry: reg,
		level:    level,
	}
}

// Enabled reports whether the bridge handles records at the given
// slog level.
func (s *SlogBridge) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).Enabled(s.level)
}

// Handle converts a slog.Record and publishes it.
func (s *SlogBridge) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	ch := s.registry.Lookup(level)
	if ch == nil || !ch.HasSubscribers() {
		return nil
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Msg = record.Message
	rec.Time = record.Time.UnixMilli()
	rec.Bindings = s.attrs
	record.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if s.group != "" {
			key = s.group + "." + a.Key
		}
		if key != "msg" {
			rec.Fields[key] = a.Value.Resolve().Any()
		}
		return true
	})

	err := ch.Publish(rec)
	core.PutRecord(rec)
	return err
}

// WithAttrs returns a new bridge carrying additional attributes as
// bindings.
func (s *SlogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(core.Fields, len(s.attrs)+len(attrs))
	for k, v := range s.attrs {
		next[k] = v
	}
	for _, a := range attrs {
		key := a.Key
		if s.group != "" {
			key = s.group + "." + a.Key
		}
		next[key] = a.Value.Resolve().Any()
	}
	return &SlogBridge{
		registry: s.registry,
		level:    s.level,
		attrs:    next,
		group:    s.group,
	}
}

// WithGroup returns a new bridge prefixing subsequent keys with name.
func (s *SlogBridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogBridge{
		registry: s.registry,
		level:    s.level,
		attrs:    s.attrs,
		group:    group,
	}
}

func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

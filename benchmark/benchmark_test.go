package benchmark

import (
	"io"
	"testing"

	"github.com/mertcanaltin/logbus/bus"
	"github.com/mertcanaltin/logbus/console"
	"github.com/mertcanaltin/logbus/consumer"
	"github.com/mertcanaltin/logbus/core"
	"github.com/mertcanaltin/logbus/logger"
	"github.com/mertcanaltin/logbus/stringify"
)

func newDiscardLogger(b *testing.B, level string) *logger.Logger {
	b.Helper()
	reg := bus.NewRegistry()
	c, err := consumer.NewJSON(consumer.Options{Level: "trace", Stream: io.Discard})
	if err != nil {
		b.Fatalf("NewJSON failed: %v", err)
	}
	c.Attach(reg)
	log, err := logger.New(logger.Options{Level: level, Registry: reg})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	return log
}

func BenchmarkDisabledLevel(b *testing.B) {
	log := newDiscardLogger(b, "warn")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Debug("never emitted")
	}
}

func BenchmarkNoSubscribers(b *testing.B) {
	log, err := logger.New(logger.Options{Registry: bus.NewRegistry()})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("nobody listening")
	}
}

func BenchmarkInfoNoFields(b *testing.B) {
	log := newDiscardLogger(b, "trace")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("info message")
	}
}

func BenchmarkInfoFiveFields(b *testing.B) {
	log := newDiscardLogger(b, "trace")
	fields := core.Fields{
		"user":    "alice",
		"request": 42,
		"ok":      true,
		"ms":      12.5,
		"path":    "/api/v1",
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("request served", fields)
	}
}

func BenchmarkNoopConsumer(b *testing.B) {
	reg := bus.NewRegistry()
	nc := newNoopConsumer()
	consumer.Attach(reg, nc)
	log, _ := logger.New(logger.Options{Registry: reg})
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("dropped on the floor")
	}
}

func BenchmarkCoarseClock(b *testing.B) {
	core.StartCoarseClock()
	reg := bus.NewRegistry()
	c, err := consumer.NewJSON(consumer.Options{Level: "trace", Stream: io.Discard})
	if err != nil {
		b.Fatalf("NewJSON failed: %v", err)
	}
	c.Attach(reg)
	log, _ := logger.New(logger.Options{Registry: reg, Clock: core.CoarseNow})
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("tick")
	}
}

func BenchmarkStringifyPlainMap(b *testing.B) {
	v := map[string]any{"a": 1, "b": "two", "c": []any{3.0, true}}
	var buf []byte
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = stringify.Append(buf[:0], v)
	}
}

func BenchmarkStringifyRichStruct(b *testing.B) {
	type payload struct {
		Name  string
		Count int
	}
	v := payload{Name: "x", Count: 7}
	var buf []byte
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = stringify.Append(buf[:0], v)
	}
}

func BenchmarkSchedulerEnqueue(b *testing.B) {
	s := console.NewScheduler(console.SchedulerConfig{})
	defer s.Close()
	dst := discardSink{}
	line := []byte("buffered console line\n")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Enqueue(dst, line)
	}
}

type discardSink struct{}

func (discardSink) Write(p []byte) (int, error) { return len(p), nil }
func (discardSink) Flush() error                { return nil }
func (discardSink) FlushSync() error            { return nil }
func (discardSink) Close() error                { return nil }

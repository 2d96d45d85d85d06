package console

import (
	"strings"
	"testing"
	"time"
)

func TestConsole_LogBuffered(t *testing.T) {
	out := &syncSink{}
	errOut := &syncSink{}
	c, err := New(out, errOut)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	c.Log("hello", 42)
	waitFor(t, func() bool { return c.Stats().Flushes >= 1 })
	if got := out.String(); got != "hello 42\n" {
		t.Errorf("out = %q", got)
	}
	if errOut.String() != "" {
		t.Error("buffered lines must not reach the err destination")
	}
}

func TestConsole_WarnBypassesQueue(t *testing.T) {
	out := &syncSink{}
	errOut := &syncSink{}
	c, err := New(out, errOut)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	c.Warn("watch out")
	// Immediate, no flush cycle needed.
	if got := errOut.String(); got != "watch out\n" {
		t.Errorf("err = %q", got)
	}
	if c.Stats().Entries != 0 {
		t.Error("warn must never enter the queue")
	}

	c.Error("broken")
	if !strings.HasSuffix(errOut.String(), "broken\n") {
		t.Errorf("err = %q", errOut.String())
	}
}

func TestConsole_NoColorForNonTerminal(t *testing.T) {
	out := &syncSink{}
	errOut := &syncSink{}
	c, _ := New(out, errOut)
	defer c.Close()

	c.Warn("plain")
	if strings.Contains(errOut.String(), "\033[") {
		t.Errorf("non-terminal destination must not be colored: %q", errOut.String())
	}
}

func TestConsole_ValueFormatting(t *testing.T) {
	out := &syncSink{}
	c, _ := New(out, &syncSink{})
	defer c.Close()

	c.Log("count:", 3, map[string]any{"a": 1}, []any{true, "x"})
	waitFor(t, func() bool { return c.Stats().Flushes >= 1 })
	want := `count: 3 {"a":1} [true,"x"]` + "\n"
	if got := out.String(); got != want {
		t.Errorf("out = %q, want %q", got, want)
	}
}

func TestConsole_CloseFlushesPending(t *testing.T) {
	out := &syncSink{}
	c, err := NewWithConfig(out, &syncSink{}, SchedulerConfig{Deadline: time.Hour})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}

	c.Log("pending")
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !strings.Contains(out.String(), "pending") {
		t.Errorf("Close must flush, out = %q", out.String())
	}
	if out.flushes == 0 {
		t.Error("Close must flush the out sink")
	}
}

func TestDefaultConsole(t *testing.T) {
	if Default() != Default() {
		t.Error("Default must return the same console")
	}
}

package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mertcanaltin/logbus/core"
)

// Sink is the byte-level destination abstraction. Write appends bytes,
// Flush pushes any userspace buffering toward the OS, FlushSync
// additionally forces the data to stable storage where the destination
// supports it, and Close flushes then releases the destination.
type Sink interface {
	io.Writer
	Flush() error
	FlushSync() error
	Close() error
}

// Resolve builds a Sink from a destination descriptor: an existing
// Sink, a file descriptor number, a path string, or an io.Writer.
// nil resolves to standard output.
func Resolve(dst any) (Sink, error) {
	switch d := dst.(type) {
	case nil:
		return Stdout(), nil
	case Sink:
		return d, nil
	case int:
		return FromFd(d), nil
	case string:
		return FromPath(d)
	case io.Writer:
		return FromWriter(d), nil
	default:
		return nil, &core.InvalidArgumentError{
			Reason: fmt.Sprintf("unsupported stream destination %T", dst),
		}
	}
}

// Stdout returns a Sink on standard output.
func Stdout() Sink {
	return &writerSink{w: os.Stdout, file: os.Stdout, keepOpen: true}
}

// Stderr returns a Sink on standard error.
func Stderr() Sink {
	return &writerSink{w: os.Stderr, file: os.Stderr, keepOpen: true}
}

// FromFd wraps an already-open file descriptor. Descriptors 1 and 2
// are never closed by the returned Sink.
func FromFd(fd int) Sink {
	switch fd {
	case 1:
		return Stdout()
	case 2:
		return Stderr()
	}
	f := os.NewFile(uintptr(fd), fmt.Sprintf("fd %d", fd))
	return &writerSink{w: f, file: f}
}

// FromWriter wraps an arbitrary io.Writer.
func FromWriter(w io.Writer) Sink {
	s := &writerSink{w: w}
	if f, ok := w.(*os.File); ok {
		s.file = f
		s.keepOpen = f == os.Stdout || f == os.Stderr
	}
	return s
}

// writerSink serializes writes to a single io.Writer. No userspace
// buffering: Flush only has work to do when the wrapped writer exposes
// its own.
type writerSink struct {
	mu       sync.Mutex
	w        io.Writer
	file     *os.File
	keepOpen bool
}

func (s *writerSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *writerSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (s *writerSink) FlushSync() error {
	if err := s.Flush(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil {
		return s.file.Sync()
	}
	return nil
}

func (s *writerSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keepOpen {
		return nil
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

package sink

import (
	"bufio"
	"os"
	"sync"
)

// fileSink writes to a file through a bufio layer. Flush drains the
// buffer to the OS; FlushSync additionally fsyncs.
type fileSink struct {
	mu sync.Mutex
	f  *os.File
	bw *bufio.Writer
}

// FromPath opens (or creates, append mode) the file at path.
func FromPath(path string) (Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return &fileSink{
		f:  f,
		bw: bufio.NewWriterSize(f, 32*1024),
	}, nil
}

func (s *fileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bw.Write(p)
}

func (s *fileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bw.Flush()
}

func (s *fileSink) FlushSync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.bw.Flush(); err != nil {
		return err
	}
	return s.f.Sync()
}

func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.bw.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

package testhelpers

import (
	"bytes"
	"sync"
	"testing"
)

// Writer forwards complete log lines to tb.Log so that they only show up for failing or verbose tests.
// A trailing partial line is held back until the next newline or the end of the test.
type Writer struct {
	tb      testing.TB
	mu      sync.Mutex
	pending []byte
	closed  bool
}

// NewWriter returns a Writer bound to tb. Writing after tb has finished panics, which usually means a server was
// left running past its test.
func NewWriter(tb testing.TB) *Writer {
	w := &Writer{
		tb:      tb,
		mu:      sync.Mutex{},
		pending: nil,
		closed:  false,
	}
	tb.Cleanup(w.flush)
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		panic("testhelpers: log written after the test finished; shut the server down in t.Cleanup")
	}
	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		if i > 0 {
			w.tb.Log(string(w.pending[:i]))
		}
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}

func (w *Writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) > 0 {
		w.tb.Log(string(w.pending))
		w.pending = nil
	}
	w.closed = true
}

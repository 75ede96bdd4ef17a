// Package core provides the session state, output sinks and error taxonomy
// shared by the interpreter and its commands.
package core

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Stdio holds the standard I/O streams of the host process.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Sink receives transcript text. The core never reads back from it.
type Sink interface {
	Append(text string)
}

// StyledSink is implemented by sinks that render echoed command lines and
// error lines differently from ordinary output.
type StyledSink interface {
	Sink
	AppendCommand(text string)
	AppendError(text string)
}

// WriterSink appends transcript text to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Append(text string) {
	_, _ = io.WriteString(s.W, text)
}

// BufferSink keeps the transcript in memory.
type BufferSink struct {
	mu     sync.Mutex
	chunks []string
}

func (b *BufferSink) Append(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chunks = append(b.chunks, text)
}

// String returns the whole transcript.
func (b *BufferSink) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.chunks, "")
}

// Chunks returns each Append call's text in order.
func (b *BufferSink) Chunks() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.chunks...)
}

// Reset discards the transcript.
func (b *BufferSink) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chunks = nil
}

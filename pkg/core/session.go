package core

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/oor367305-byte/abobusVFS/pkg/logging"
	"github.com/oor367305-byte/abobusVFS/pkg/sandbox"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// Session is the mutable state threaded through command dispatch. Each
// session owns its index and current directory, so several sessions can
// coexist in one process.
type Session struct {
	Index    *vfs.Index
	Resolver *sandbox.Resolver
	// FS is used for real reads under the root (head, scripts).
	FS     afero.Fs
	Out    Sink
	Logger *logging.Logger

	cwd     string
	running bool
}

// NewSession starts a session at the root of idx. A nil index is replaced
// by an empty one.
func NewSession(idx *vfs.Index, fsys afero.Fs, resolver *sandbox.Resolver, out Sink) *Session {
	if idx == nil {
		idx = vfs.NewIndex()
	}
	return &Session{
		Index:    idx,
		Resolver: resolver,
		FS:       fsys,
		Out:      out,
		Logger:   logging.GetLogger().WithPrefix("shell"),
		cwd:      vfs.RootKey,
		running:  true,
	}
}

// Cwd returns the current directory key.
func (s *Session) Cwd() string { return s.cwd }

// Chdir moves to key, which must be present in the index.
func (s *Session) Chdir(key string) error {
	if !s.Index.Has(key) {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	s.cwd = key
	return nil
}

// Running reports whether the session still accepts commands.
func (s *Session) Running() bool { return s.running }

// Terminate ends the session. It cannot be undone.
func (s *Session) Terminate() { s.running = false }

// Resolve maps a raw path relative to the current directory.
func (s *Session) Resolve(raw string) (string, bool) {
	return s.Resolver.Resolve(raw, s.cwd)
}

// Expand expands environment references in s.
func (s *Session) Expand(text string) string {
	return s.Resolver.Expand(text)
}

// RealPath maps a key to its path on the real filesystem.
func (s *Session) RealPath(key string) string {
	return s.Resolver.RealPathOf(key)
}

// Print appends text verbatim to the transcript.
func (s *Session) Print(text string) {
	if text != "" {
		s.Out.Append(text)
	}
}

// Println appends text followed by a newline.
func (s *Session) Println(text string) {
	s.Out.Append(text + "\n")
}

// Echo records a submitted command line in the transcript as "> line".
func (s *Session) Echo(line string) {
	text := "> " + line + "\n"
	if styled, ok := s.Out.(StyledSink); ok {
		styled.AppendCommand(text)
		return
	}
	s.Out.Append(text)
}

// Errorln appends an error line to the transcript.
func (s *Session) Errorln(text string) {
	if styled, ok := s.Out.(StyledSink); ok {
		styled.AppendError(text + "\n")
		return
	}
	s.Out.Append(text + "\n")
}

// PrintLines appends each line terminated by a newline as one block.
func (s *Session) PrintLines(lines []string) {
	if len(lines) == 0 {
		return
	}
	s.Out.Append(strings.Join(lines, "\n") + "\n")
}

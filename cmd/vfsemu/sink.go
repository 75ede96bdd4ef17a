package main

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
)

var (
	// Echoed command lines
	CommandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	// Error lines
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Interactive prompt
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))
)

// TerminalSink writes the transcript to a terminal, styling command echoes
// and errors when color is enabled.
type TerminalSink struct {
	// EchoCommands controls whether "> line" echoes are written.
	EchoCommands bool

	mu    sync.Mutex
	w     io.Writer
	color bool
}

var _ core.StyledSink = (*TerminalSink)(nil)

// NewTerminalSink returns a sink writing to w.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	return &TerminalSink{w: w, color: color, EchoCommands: true}
}

func (s *TerminalSink) Append(text string) {
	s.write(text, nil)
}

func (s *TerminalSink) AppendCommand(text string) {
	if !s.EchoCommands {
		return
	}
	s.write(text, &CommandStyle)
}

func (s *TerminalSink) AppendError(text string) {
	s.write(text, &ErrorStyle)
}

// Prompt writes the interactive prompt without a trailing newline.
func (s *TerminalSink) Prompt(text string) {
	s.write(text, &PromptStyle)
}

func (s *TerminalSink) write(text string, style *lipgloss.Style) {
	if s.color && style != nil {
		text = render(*style, text)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, text)
}

// render styles each line separately so newlines stay outside escape codes.
func render(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Package shell implements the command interpreter and the script runner
// that drive a VFS session.
package shell

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/oor367305-byte/abobusVFS/pkg/applets/cd"
	"github.com/oor367305-byte/abobusVFS/pkg/applets/chmod"
	"github.com/oor367305-byte/abobusVFS/pkg/applets/echo"
	"github.com/oor367305-byte/abobusVFS/pkg/applets/exit"
	"github.com/oor367305-byte/abobusVFS/pkg/applets/head"
	"github.com/oor367305-byte/abobusVFS/pkg/applets/ls"
	"github.com/oor367305-byte/abobusVFS/pkg/applets/mkdir"
	"github.com/oor367305-byte/abobusVFS/pkg/applets/pwd"
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/core/envutil"
	"github.com/oor367305-byte/abobusVFS/pkg/core/textutil"
	"github.com/oor367305-byte/abobusVFS/pkg/logging"
)

// State is the interpreter state after a dispatch.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Command is the signature shared by every command handler.
type Command func(sess *core.Session, args []string) error

var builtinCommands = map[string]Command{
	"ls":    ls.Run,
	"cd":    cd.Run,
	"head":  head.Run,
	"echo":  echo.Run,
	"mkdir": mkdir.Run,
	"chmod": chmod.Run,
	"exit":  exit.Run,
	"pwd":   pwd.Run,
}

// Interpreter dispatches command lines against one session.
type Interpreter struct {
	sess     *core.Session
	commands map[string]Command
	logger   *logging.Logger
}

// New returns an interpreter with the built-in command table.
func New(sess *core.Session) *Interpreter {
	it := &Interpreter{
		sess:     sess,
		commands: make(map[string]Command, len(builtinCommands)+1),
		logger:   sess.Logger,
	}
	if it.logger == nil {
		it.logger = logging.GetLogger().WithPrefix("shell")
	}
	for name, cmd := range builtinCommands {
		it.commands[name] = cmd
	}
	it.commands["help"] = it.help
	return it
}

// Register adds or replaces a command.
func (it *Interpreter) Register(name string, cmd Command) {
	it.commands[name] = cmd
}

// Session returns the session driven by the interpreter.
func (it *Interpreter) Session() *core.Session { return it.sess }

// Running reports whether further lines will be processed.
func (it *Interpreter) Running() bool { return it.sess.Running() }

// Commands returns the command names in lexical order.
func (it *Interpreter) Commands() []string {
	names := make([]string, 0, len(it.commands))
	for name := range it.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch processes one command line. The line is echoed to the transcript
// before its result. Once the session has terminated, Dispatch does nothing
// and keeps returning StateTerminated.
func (it *Interpreter) Dispatch(line string) State {
	if !it.sess.Running() {
		return StateTerminated
	}
	it.sess.Echo(line)

	tokens, err := textutil.SplitTokens(line)
	if err != nil {
		it.report(&core.CommandError{Cmd: "syntax error", Detail: err.Error(), Err: core.ErrArgument})
		return it.state()
	}
	if len(tokens) == 0 {
		return it.state()
	}

	name, args := tokens[0], tokens[1:]
	if len(tokens) == 1 && envutil.IsReference(name) {
		it.sess.Println(it.sess.Expand(name))
		return it.state()
	}

	cmd, ok := it.commands[name]
	if !ok {
		it.report(&core.CommandError{Cmd: name, Detail: "command not found", Err: core.ErrUnknownCommand})
		return it.state()
	}
	if err := cmd(it.sess, args); err != nil {
		it.report(err)
	}
	it.logger.Debug("dispatched %q: cwd=%s state=%s", name, it.sess.Cwd(), it.state())
	return it.state()
}

func (it *Interpreter) state() State {
	if it.sess.Running() {
		return StateRunning
	}
	return StateTerminated
}

func (it *Interpreter) report(err error) {
	var cmdErr *core.CommandError
	if !errors.As(err, &cmdErr) {
		err = fmt.Errorf("error: %w", err)
	}
	it.logger.Debug("command failed: %v", err)
	it.sess.Errorln(err.Error())
}

func (it *Interpreter) help(sess *core.Session, args []string) error {
	if len(args) != 0 {
		return core.UsageError("help", "takes no arguments")
	}
	sess.Println("commands: " + strings.Join(it.Commands(), ", "))
	return nil
}

// Banner is the greeting a host shows before the first prompt.
func (it *Interpreter) Banner() string {
	return "VFS emulator\ncommands: " + strings.Join(it.Commands(), ", ") + "\n"
}

package core

import (
	"errors"
	"fmt"

	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// Error kinds reported in the transcript. None of them end a session.
var (
	ErrStartupNotFound = vfs.ErrRootNotFound
	ErrNotFound        = vfs.ErrNotExist
	ErrAlreadyExists   = vfs.ErrExist
	ErrArgument        = errors.New("invalid arguments")
	ErrIO              = errors.New("i/o error")
	ErrUnknownCommand  = errors.New("unknown command")
)

// CommandError is returned by command handlers. Arg names the offending
// operand, if any; Detail adds a human-readable explanation.
type CommandError struct {
	Cmd    string
	Arg    string
	Detail string
	Err    error
}

func (e *CommandError) Error() string {
	msg := e.Cmd + ": "
	if e.Arg != "" {
		msg += e.Arg + ": "
	}
	if e.Detail != "" {
		return msg + e.Detail
	}
	return msg + e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

// UsageError reports wrong arity or a malformed operand.
func UsageError(cmd, format string, args ...any) error {
	return &CommandError{Cmd: cmd, Detail: fmt.Sprintf(format, args...), Err: ErrArgument}
}

// NotFoundError reports a path that is not in the index.
func NotFoundError(cmd, arg string) error {
	return &CommandError{Cmd: cmd, Arg: arg, Err: ErrNotFound}
}

// ExistsError reports a duplicate directory.
func ExistsError(cmd, arg string) error {
	return &CommandError{Cmd: cmd, Arg: arg, Err: ErrAlreadyExists}
}

// FileError reports a real I/O failure on arg.
func FileError(cmd, arg string, err error) error {
	return &CommandError{Cmd: cmd, Arg: arg, Detail: err.Error(), Err: fmt.Errorf("%w: %w", ErrIO, err)}
}

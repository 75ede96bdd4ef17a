package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oor367305-byte/abobusVFS/pkg/applets/pwd"
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/core/envutil"
	"github.com/oor367305-byte/abobusVFS/pkg/logging"
	"github.com/oor367305-byte/abobusVFS/pkg/shell"
)

// Environment variables consulted when the matching flag is absent.
const (
	EnvRoot   = "VFSEMU_ROOT"
	EnvScript = "VFSEMU_SCRIPT"
)

// RootCommand holds the host configuration.
type RootCommand struct {
	stdio *core.Stdio
	fs    afero.Fs

	root       string
	script     string
	envFile    string
	logLevel   string
	ignoreFile string
	noColor    bool
	noEcho     bool
}

// NewRootCommand creates the vfsemu command bound to stdio.
func NewRootCommand(stdio *core.Stdio) *cobra.Command {
	return newRootCommand(stdio, afero.NewReadOnlyFs(afero.NewOsFs()))
}

func newRootCommand(stdio *core.Stdio, fsys afero.Fs) *cobra.Command {
	rc := &RootCommand{stdio: stdio, fs: fsys}

	cmd := &cobra.Command{
		Use:   "vfsemu [ROOT [SCRIPT]]",
		Short: "Shell emulator over a read-only mirror of a directory tree",
		Long: `vfsemu mirrors a real directory tree into memory and runs a small shell
over it: ls, cd, head, echo, mkdir, chmod, pwd and exit.

Directories created with mkdir and modes set with chmod live only in the
session; the real tree is never written.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE:         rc.Run,
	}
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)

	cmd.Flags().StringVar(&rc.root, "root", "", "VFS root directory (default "+shell.DefaultRoot+", env "+EnvRoot+")")
	cmd.Flags().StringVar(&rc.script, "script", "", "script to run before the prompt (env "+EnvScript+")")
	cmd.Flags().StringVar(&rc.envFile, "env-file", "", "dotenv file loaded before startup")
	cmd.Flags().StringVar(&rc.logLevel, "log-level", "", "log level: error, warn, info, debug, trace")
	cmd.Flags().StringVar(&rc.ignoreFile, "ignore-file", "", "ignore file name looked up in the root (default .vfsignore)")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "disable styled output")
	cmd.Flags().BoolVar(&rc.noEcho, "no-echo", false, "do not echo typed commands at an interactive prompt")

	return cmd
}

// Run starts a session, runs the startup script and then reads commands
// from stdin until exit or end of input.
func (rc *RootCommand) Run(cmd *cobra.Command, args []string) error {
	if rc.envFile != "" {
		if err := godotenv.Load(rc.envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}
	envutil.SeedHome()

	logger := logging.GetLogger()
	logger.SetOutput(rc.stdio.Err)
	if rc.logLevel != "" {
		level, err := logging.ParseLevel(rc.logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
	}

	root := pick(rc.root, args, 0, EnvRoot, shell.DefaultRoot)
	script := pick(rc.script, args, 1, EnvScript, "")
	interactive := isTerminal(rc.stdio.In)

	sink := NewTerminalSink(rc.stdio.Out, !rc.noColor && isTerminal(rc.stdio.Out))
	sink.EchoCommands = echoCommands(interactive, rc.noEcho)

	it, err := shell.Start(shell.Config{
		Root:       root,
		FS:         rc.fs,
		Out:        sink,
		IgnoreFile: rc.ignoreFile,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if script != "" {
		sink.EchoCommands = true
		if err := shell.RunScript(it, script); err != nil {
			logger.Warn("startup script: %v", err)
		}
		sink.EchoCommands = echoCommands(interactive, rc.noEcho)
	}
	if !it.Running() {
		return nil
	}

	if !interactive {
		return shell.RunLines(it, rc.stdio.In)
	}
	return rc.repl(it, sink)
}

func (rc *RootCommand) repl(it *shell.Interpreter, sink *TerminalSink) error {
	sink.Append(it.Banner())
	reader := bufio.NewReader(rc.stdio.In)
	for it.Running() {
		sink.Prompt(Prompt(it.Session().Cwd()))
		line, err := shell.ReadLine(reader)
		if err == io.EOF {
			sink.Append("\n")
			return nil
		}
		if err != nil {
			return err
		}
		it.Dispatch(line)
	}
	return nil
}

// echoCommands reports whether "> line" echoes reach the terminal. They are
// only dropped at an interactive prompt when the user asked for it.
func echoCommands(interactive, noEcho bool) bool {
	return !(interactive && noEcho)
}

// Prompt renders the interactive prompt for the directory key cwd.
func Prompt(cwd string) string {
	return "vfs:" + pwd.Display(cwd) + "$ "
}

// pick returns the flag value, then the positional argument at i, then the
// environment variable, then def.
func pick(flag string, args []string, i int, env, def string) string {
	if flag != "" {
		return flag
	}
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

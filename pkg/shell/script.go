package shell

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
)

// CommentMarker starts a script line that is skipped.
const CommentMarker = "#"

// RunLines dispatches each non-blank, non-comment line of r in order and
// stops early once the session terminates.
func RunLines(it *Interpreter, r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		raw, err := ReadLine(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}
		if it.Dispatch(line) == StateTerminated {
			return nil
		}
	}
}

// ReadLine returns the next line of r without its terminator. Lines have no
// length limit. A final line without a newline is returned before io.EOF.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// RunScript executes the script at path. The path is tried as given and, when
// relative, again under the VFS root. Failures are reported to the transcript
// and returned.
func RunScript(it *Interpreter, path string) error {
	sess := it.Session()
	location, ok := locateScript(sess, path)
	if !ok {
		err := &core.CommandError{Cmd: "script", Arg: path, Detail: "not found", Err: core.ErrNotFound}
		sess.Errorln(err.Error())
		return err
	}
	it.logger.Info("running script %s", location)

	f, err := sess.FS.Open(location)
	if err != nil {
		return scriptFailure(sess, path, err)
	}
	defer f.Close()

	if err := RunLines(it, f); err != nil {
		return scriptFailure(sess, path, err)
	}
	return nil
}

func locateScript(sess *core.Session, path string) (string, bool) {
	candidates := []string{path}
	if !filepath.IsAbs(path) && sess.Resolver != nil {
		candidates = append(candidates, filepath.Join(sess.Resolver.Root(), path))
	}
	for _, candidate := range candidates {
		info, err := sess.FS.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

func scriptFailure(sess *core.Session, path string, err error) error {
	wrapped := core.FileError("script", path, err)
	sess.Errorln(wrapped.Error())
	return fmt.Errorf("run script: %w", wrapped)
}

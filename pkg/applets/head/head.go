// Package head implements the head command.
package head

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// DefaultLines is the number of lines printed.
const DefaultLines = 10

// ErrEncoding reports a file that is not valid UTF-8 text.
var ErrEncoding = errors.New("invalid UTF-8 text")

// Run prints the first lines of a file that the index lists under its
// parent directory. The file is read from the real tree.
func Run(sess *core.Session, args []string) error {
	if len(args) != 1 {
		return core.UsageError("head", "expected exactly one file operand")
	}
	key, ok := sess.Resolve(args[0])
	if !ok {
		return core.NotFoundError("head", args[0])
	}
	parent, name := vfs.SplitKey(key)
	entry, ok := sess.Index.Get(parent)
	if !ok || name == "" || !entry.HasFile(name) {
		return core.NotFoundError("head", args[0])
	}

	f, err := sess.FS.Open(sess.RealPath(key))
	if err != nil {
		return core.FileError("head", args[0], err)
	}
	defer f.Close()

	text, err := Lines(f, DefaultLines)
	if err != nil {
		return core.FileError("head", args[0], err)
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	sess.Print(text)
	return nil
}

// Lines returns at most n lines from r, line terminators included. A line
// that is not valid UTF-8 fails with ErrEncoding.
func Lines(r io.Reader, n int) (string, error) {
	reader := bufio.NewReader(r)
	var buf strings.Builder
	for i := 0; i < n; i++ {
		line, err := reader.ReadString('\n')
		if !utf8.ValidString(line) {
			return "", ErrEncoding
		}
		buf.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

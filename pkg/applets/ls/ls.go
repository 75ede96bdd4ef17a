// Package ls implements the ls command.
package ls

import (
	"github.com/oor367305-byte/abobusVFS/pkg/core"
)

// DirSuffix marks directories in listings.
const DirSuffix = "/"

// Run lists the current directory: subdirectories first (suffixed with "/"),
// then files, each group in lexical order. It takes no arguments.
func Run(sess *core.Session, args []string) error {
	if len(args) != 0 {
		return core.UsageError("ls", "takes no arguments")
	}
	entry, ok := sess.Index.Get(sess.Cwd())
	if !ok {
		return core.NotFoundError("ls", sess.Cwd())
	}
	lines := make([]string, 0, len(entry.Subdirs)+len(entry.Files))
	for _, name := range entry.SortedSubdirs() {
		lines = append(lines, name+DirSuffix)
	}
	lines = append(lines, entry.SortedFiles()...)
	sess.PrintLines(lines)
	return nil
}

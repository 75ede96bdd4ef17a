// Package pwd implements the pwd command.
package pwd

import (
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// Run prints the current directory as an absolute VFS path.
func Run(sess *core.Session, args []string) error {
	if len(args) != 0 {
		return core.UsageError("pwd", "takes no arguments")
	}
	sess.Println(Display(sess.Cwd()))
	return nil
}

// Display renders a key the way a user would type it from the root.
func Display(key string) string {
	if key == vfs.RootKey {
		return "/"
	}
	return "/" + key
}

// Package cd implements the cd command.
package cd

import (
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// Run changes the current directory. No operand, "." and "/" all return to
// the root.
func Run(sess *core.Session, args []string) error {
	if len(args) > 1 {
		return core.UsageError("cd", "too many arguments")
	}
	if len(args) == 0 || args[0] == "." || args[0] == "/" {
		if err := sess.Chdir(vfs.RootKey); err != nil {
			return core.NotFoundError("cd", vfs.RootKey)
		}
		return nil
	}
	key, ok := sess.Resolve(args[0])
	if !ok || !sess.Index.Has(key) {
		return core.NotFoundError("cd", args[0])
	}
	return sess.Chdir(key)
}

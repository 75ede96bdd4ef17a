// Package mkdir implements the mkdir command. Directories are created in
// the index only; the real tree is never modified.
package mkdir

import (
	"errors"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// Run creates exactly one directory. The parent must already exist.
func Run(sess *core.Session, args []string) error {
	if len(args) != 1 {
		return core.UsageError("mkdir", "expected exactly one directory operand")
	}
	key, ok := sess.Resolve(args[0])
	if !ok {
		return core.NotFoundError("mkdir", args[0])
	}
	if sess.Index.Has(key) {
		return core.ExistsError("mkdir", args[0])
	}
	if err := sess.Index.Mkdir(key); err != nil {
		if errors.Is(err, vfs.ErrExist) {
			return core.ExistsError("mkdir", args[0])
		}
		parent, _ := vfs.SplitKey(key)
		return &core.CommandError{
			Cmd:    "mkdir",
			Arg:    args[0],
			Detail: "parent directory " + parent + " does not exist",
			Err:    core.ErrNotFound,
		}
	}
	sess.Println("created directory " + key)
	return nil
}

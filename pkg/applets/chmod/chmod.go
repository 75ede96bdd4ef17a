// Package chmod implements the chmod command. The mode is recorded on the
// index entry and is not enforced.
package chmod

import (
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// Run sets the permission tag of an existing directory: chmod PATH MODE,
// where MODE is one of r, w or x.
func Run(sess *core.Session, args []string) error {
	if len(args) != 2 {
		return core.UsageError("chmod", "usage: chmod PATH r|w|x")
	}
	key, ok := sess.Resolve(args[0])
	if !ok || !sess.Index.Has(key) {
		return core.NotFoundError("chmod", args[0])
	}
	perm, err := vfs.ParsePermission(args[1])
	if err != nil {
		return core.UsageError("chmod", "%v", err)
	}
	if err := sess.Index.Chmod(key, perm); err != nil {
		return core.NotFoundError("chmod", args[0])
	}
	sess.Println("mode of " + key + " set to " + perm.String())
	return nil
}

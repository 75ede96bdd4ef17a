// Package echo implements the echo command.
package echo

import (
	"strings"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
)

// Run expands each argument independently and prints them joined by a
// single space.
func Run(sess *core.Session, args []string) error {
	expanded := make([]string, len(args))
	for i, arg := range args {
		expanded[i] = sess.Expand(arg)
	}
	sess.Println(strings.Join(expanded, " "))
	return nil
}

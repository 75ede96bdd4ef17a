// Package exit implements the exit command.
package exit

import "github.com/oor367305-byte/abobusVFS/pkg/core"

// Goodbye is printed when the session terminates.
const Goodbye = "exiting"

// Run terminates the session. Arguments are ignored.
func Run(sess *core.Session, _ []string) error {
	sess.Println(Goodbye)
	sess.Terminate()
	return nil
}

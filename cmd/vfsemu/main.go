// Command vfsemu runs the VFS shell emulator over a real directory tree.
package main

import (
	"os"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	if err := NewRootCommand(stdio).Execute(); err != nil {
		stdio.Errorf("vfsemu: %v\n", err)
		os.Exit(core.ExitFailure)
	}
}

package shell_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/logging"
	"github.com/oor367305-byte/abobusVFS/pkg/sandbox"
	"github.com/oor367305-byte/abobusVFS/pkg/shell"
	"github.com/oor367305-byte/abobusVFS/pkg/testutil"
)

func TestStart(t *testing.T) {
	fsys := testutil.MemTree(t, testutil.MemRoot, map[string]string{
		"docs/readme.txt": "hello\n",
		"skip/":           "",
		".vfsignore":      "skip/\n",
	})
	sink := &core.BufferSink{}

	it, err := shell.Start(shell.Config{
		Root:            testutil.MemRoot,
		FS:              fsys,
		Out:             sink,
		ResolverOptions: []sandbox.Option{sandbox.WithoutSymlinks()},
	})
	require.NoError(t, err)

	it.Dispatch("ls")
	it.Dispatch("head docs/readme.txt")
	assert.Equal(t, "> ls\ndocs/\n> head docs/readme.txt\nhello\n", sink.String())
}

func TestStartMissingRoot(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.New(&logs, "test")
	sink := &core.BufferSink{}

	it, err := shell.Start(shell.Config{
		Root:   "/does/not/exist",
		FS:     afero.NewMemMapFs(),
		Out:    sink,
		Logger: logger,
	})
	require.NoError(t, err)
	assert.Equal(t, "startup: /does/not/exist: vfs root not found or not a directory\n", sink.String())
	assert.Contains(t, logs.String(), "continuing without a tree")

	sink.Reset()
	for _, line := range []string{"ls", "cd anything", "cd", "mkdir fresh", "cd fresh", "chmod . r", "head a.txt", "pwd"} {
		assert.Equal(t, shell.StateRunning, it.Dispatch(line), line)
	}
	assert.Equal(t,
		"> ls\nls: .: no such file or directory\n"+
			"> cd anything\ncd: anything: no such file or directory\n"+
			"> cd\ncd: .: no such file or directory\n"+
			"> mkdir fresh\nmkdir: fresh: parent directory . does not exist\n"+
			"> cd fresh\ncd: fresh: no such file or directory\n"+
			"> chmod . r\nchmod: .: no such file or directory\n"+
			"> head a.txt\nhead: a.txt: no such file or directory\n"+
			"> pwd\n/\n",
		sink.String())
	assert.False(t, it.Session().Index.Has("fresh"))
	assert.Zero(t, it.Session().Index.Len())
	assert.Equal(t, ".", it.Session().Cwd())
}

func TestStartRequiresSink(t *testing.T) {
	_, err := shell.Start(shell.Config{Root: testutil.MemRoot, FS: afero.NewMemMapFs()})
	assert.Error(t, err)
}

func TestStartCustomIgnoreFile(t *testing.T) {
	fsys := testutil.MemTree(t, testutil.MemRoot, map[string]string{
		"keep.txt":   "",
		"drop.log":   "",
		".hideme":    "*.log\n",
		".vfsignore": "keep.txt\n",
	})
	sink := &core.BufferSink{}

	it, err := shell.Start(shell.Config{
		Root:            testutil.MemRoot,
		FS:              fsys,
		Out:             sink,
		IgnoreFile:      ".hideme",
		ResolverOptions: []sandbox.Option{sandbox.WithoutSymlinks()},
	})
	require.NoError(t, err)

	it.Dispatch("ls")
	assert.Equal(t, "> ls\nkeep.txt\n", sink.String())
}

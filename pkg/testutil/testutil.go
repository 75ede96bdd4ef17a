// Package testutil provides shared testing utilities and fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/sandbox"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// MemRoot is the root used by in-memory fixtures.
const MemRoot = "/vfs"

// TempFile creates a temp file with content, returns path.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TempDirWithFiles creates a temp directory populated with files.
// The files map keys are relative slash paths, values are file contents.
// A key ending in "/" creates an empty directory.
func TempDirWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	populate(t, afero.NewOsFs(), dir, files)
	return dir
}

// MemTree builds an in-memory filesystem with files under root, using the
// same key conventions as TempDirWithFiles.
func MemTree(t *testing.T, root string, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	populate(t, fsys, root, files)
	return fsys
}

func populate(t *testing.T, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fsys.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
}

// NewMemSession loads files into an in-memory tree rooted at MemRoot and
// returns a session over it together with its transcript.
func NewMemSession(t *testing.T, files map[string]string) (*core.Session, *core.BufferSink) {
	t.Helper()
	return NewSession(t, MemTree(t, MemRoot, files), MemRoot, sandbox.WithoutSymlinks())
}

// NewDiskSession is NewMemSession over a real temp directory.
func NewDiskSession(t *testing.T, files map[string]string) (*core.Session, *core.BufferSink, string) {
	t.Helper()
	dir := TempDirWithFiles(t, files)
	sess, sink := NewSession(t, afero.NewOsFs(), dir)
	return sess, sink, dir
}

// NewSession loads root from fsys and starts a session over it.
func NewSession(t *testing.T, fsys afero.Fs, root string, opts ...sandbox.Option) (*core.Session, *core.BufferSink) {
	t.Helper()
	idx, err := vfs.Load(fsys, root)
	require.NoError(t, err)
	sink := &core.BufferSink{}
	return core.NewSession(idx, fsys, sandbox.NewResolver(root, opts...), sink), sink
}

// RunCommand is the signature shared by every command handler.
type RunCommand func(sess *core.Session, args []string) error

// CommandTestCase defines a parameterized test case for a command handler.
type CommandTestCase struct {
	Name       string                                 // Test name
	Args       []string                               // Command arguments
	Files      map[string]string                      // Tree to mirror
	Cwd        string                                 // Starting directory key
	WantOut    string                                 // Expected transcript (exact match)
	WantOutSub string                                 // Expected transcript substring
	WantErr    error                                  // Expected error kind (errors.Is)
	WantErrSub string                                 // Expected error message substring
	Check      func(t *testing.T, sess *core.Session) // Optional post-run check
	Setup      func(t *testing.T, sess *core.Session) // Optional pre-run hook
}

// RunCommandTests runs a slice of parameterized command test cases over
// in-memory trees.
func RunCommandTests(t *testing.T, run RunCommand, tests []CommandTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			sess, sink := NewMemSession(t, tt.Files)
			if tt.Cwd != "" {
				require.NoError(t, sess.Chdir(tt.Cwd))
			}
			if tt.Setup != nil {
				tt.Setup(t, sess)
			}

			err := run(sess, tt.Args)

			if tt.WantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.WantErr)
			} else if tt.WantErrSub == "" {
				require.NoError(t, err)
			}
			if tt.WantErrSub != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.WantErrSub)
			}
			if tt.WantOut != "" {
				assert.Equal(t, tt.WantOut, sink.String())
			}
			if tt.WantOutSub != "" {
				assert.Contains(t, sink.String(), tt.WantOutSub)
			}
			if tt.Check != nil {
				tt.Check(t, sess)
			}
		})
	}
}

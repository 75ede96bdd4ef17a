package mkdir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oor367305-byte/abobusVFS/pkg/applets/mkdir"
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/testutil"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

func TestMkdir(t *testing.T) {
	files := map[string]string{
		"docs/readme.txt": "r",
	}

	tests := []testutil.CommandTestCase{
		{
			Name:    "create",
			Files:   files,
			Args:    []string{"foo"},
			WantOut: "created directory foo\n",
			Check: func(t *testing.T, sess *core.Session) {
				e, ok := sess.Index.Get("foo")
				require.True(t, ok)
				assert.Equal(t, vfs.PermFull, e.Perm)
				root, _ := sess.Index.Get(".")
				assert.True(t, root.HasSubdir("foo"))
			},
		},
		{
			Name:  "relative_to_cwd",
			Files: files,
			Cwd:   "docs",
			Args:  []string{"drafts"},
			Check: func(t *testing.T, sess *core.Session) {
				assert.True(t, sess.Index.Has("docs/drafts"))
			},
		},
		{
			Name:  "absolute_inside",
			Files: files,
			Args:  []string{"/vfs/docs/new"},
			Check: func(t *testing.T, sess *core.Session) {
				assert.True(t, sess.Index.Has("docs/new"))
			},
		},
		{Name: "existing", Files: files, Args: []string{"docs"}, WantErr: core.ErrAlreadyExists},
		{Name: "root", Files: files, Args: []string{"."}, WantErr: core.ErrAlreadyExists},
		{Name: "over_file", Files: files, Args: []string{"docs/readme.txt"}, WantErr: core.ErrAlreadyExists},
		{
			Name:       "missing_parent",
			Files:      files,
			Args:       []string{"a/b"},
			WantErr:    core.ErrNotFound,
			WantErrSub: "parent directory a does not exist",
			Check: func(t *testing.T, sess *core.Session) {
				assert.False(t, sess.Index.Has("a/b"))
				assert.False(t, sess.Index.Has("a"))
			},
		},
		{Name: "outside", Files: files, Args: []string{"/tmp/x"}, WantErr: core.ErrNotFound},
		{Name: "no_args", Files: files, WantErr: core.ErrArgument},
		{Name: "two_args", Files: files, Args: []string{"a", "b"}, WantErr: core.ErrArgument},
	}

	testutil.RunCommandTests(t, mkdir.Run, tests)
}

func TestMkdirTwiceLeavesIndexUnchanged(t *testing.T) {
	sess, _ := testutil.NewMemSession(t, nil)
	require.NoError(t, mkdir.Run(sess, []string{"foo"}))
	before := sess.Index.Keys()

	err := mkdir.Run(sess, []string{"foo"})
	require.ErrorIs(t, err, core.ErrAlreadyExists)
	assert.Equal(t, before, sess.Index.Keys())
	root, _ := sess.Index.Get(".")
	assert.Equal(t, []string{"foo"}, root.SortedSubdirs())
}

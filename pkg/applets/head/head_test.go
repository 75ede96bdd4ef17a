package head_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oor367305-byte/abobusVFS/pkg/applets/head"
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/testutil"
)

func numbered(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestHead(t *testing.T) {
	files := map[string]string{
		"long.txt":        numbered(15),
		"short.txt":       numbered(3),
		"docs/ten.txt":    numbered(10),
		"nonl.txt":        "first\nlast without newline",
		"blank.txt":       "",
		"spaces.txt":      "  indented\t\n\n trailing  \n",
		"docs/sub/":       "",
		".secret":         "hidden\n",
		"my file.txt":     "spaced\n",
		"docs/utf8.txt":   "привет\nмир\n",
		"docs/api/r.json": "{}\n",
		"latin1.txt":      "ok\ncaf\xe9\n",
		"late_bad.txt":    numbered(10) + "\xff\xfe\n",
	}

	tests := []testutil.CommandTestCase{
		{Name: "first_ten_of_fifteen", Files: files, Args: []string{"long.txt"}, WantOut: numbered(10)},
		{Name: "all_of_three", Files: files, Args: []string{"short.txt"}, WantOut: numbered(3)},
		{Name: "exactly_ten", Files: files, Args: []string{"docs/ten.txt"}, WantOut: numbered(10)},
		{Name: "relative_to_cwd", Files: files, Cwd: "docs", Args: []string{"ten.txt"}, WantOut: numbered(10)},
		{Name: "parent_ref", Files: files, Cwd: "docs/sub", Args: []string{"../../short.txt"}, WantOut: numbered(3)},
		{Name: "absolute_inside", Files: files, Args: []string{"/vfs/short.txt"}, WantOut: numbered(3)},
		{Name: "missing_final_newline", Files: files, Args: []string{"nonl.txt"}, WantOut: "first\nlast without newline\n"},
		{Name: "verbatim_whitespace", Files: files, Args: []string{"spaces.txt"}, WantOut: "  indented\t\n\n trailing  \n"},
		{Name: "utf8", Files: files, Args: []string{"docs/utf8.txt"}, WantOut: "привет\nмир\n"},
		{Name: "space_in_name", Files: files, Args: []string{"my file.txt"}, WantOut: "spaced\n"},
		{
			Name:  "empty_file",
			Files: files,
			Args:  []string{"blank.txt"},
			Check: func(t *testing.T, sess *core.Session) {
				assert.Empty(t, sess.Out.(*core.BufferSink).String())
			},
		},
		{Name: "missing", Files: files, Args: []string{"nope.txt"}, WantErr: core.ErrNotFound},
		{Name: "directory", Files: files, Args: []string{"docs"}, WantErr: core.ErrNotFound},
		{Name: "hidden", Files: files, Args: []string{".secret"}, WantErr: core.ErrNotFound},
		{Name: "root", Files: files, Args: []string{"."}, WantErr: core.ErrNotFound},
		{Name: "outside", Files: files, Args: []string{"/etc/passwd"}, WantErr: core.ErrNotFound},
		{Name: "escape", Files: files, Args: []string{"../etc/passwd"}, WantErr: core.ErrNotFound},
		{Name: "no_args", Files: files, WantErr: core.ErrArgument},
		{Name: "two_args", Files: files, Args: []string{"long.txt", "short.txt"}, WantErr: core.ErrArgument},
		{
			Name:       "invalid_utf8",
			Files:      files,
			Args:       []string{"latin1.txt"},
			WantErr:    core.ErrIO,
			WantErrSub: "head: latin1.txt: invalid UTF-8 text",
			Check: func(t *testing.T, sess *core.Session) {
				assert.Empty(t, sess.Out.(*core.BufferSink).String())
			},
		},
		{Name: "invalid_utf8_past_limit", Files: files, Args: []string{"late_bad.txt"}, WantOut: numbered(10)},
		{
			Name:  "read_failure",
			Files: files,
			Args:  []string{"short.txt"},
			Setup: func(t *testing.T, sess *core.Session) {
				require.NoError(t, sess.FS.Remove(sess.RealPath("short.txt")))
			},
			WantErr:    core.ErrIO,
			WantErrSub: "head: short.txt:",
		},
	}

	testutil.RunCommandTests(t, head.Run, tests)
}

func TestHeadRealFile(t *testing.T) {
	sess, sink, _ := testutil.NewDiskSession(t, map[string]string{"notes/todo.txt": numbered(12)})
	require.NoError(t, head.Run(sess, []string{"notes/todo.txt"}))
	assert.Equal(t, numbered(10), sink.String())
}

func TestLines(t *testing.T) {
	got, err := head.Lines(strings.NewReader("a\nb\nc\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", got)

	got, err = head.Lines(strings.NewReader("a\nb"), 5)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = head.Lines(strings.NewReader(""), 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = head.Lines(strings.NewReader("fine\n\xc3\x28\n"), 5)
	assert.ErrorIs(t, err, head.ErrEncoding)
}

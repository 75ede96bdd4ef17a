package pwd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oor367305-byte/abobusVFS/pkg/applets/pwd"
	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/testutil"
)

func TestPwd(t *testing.T) {
	files := map[string]string{"a/b/": ""}
	tests := []testutil.CommandTestCase{
		{Name: "root", Files: files, WantOut: "/\n"},
		{Name: "nested", Files: files, Cwd: "a/b", WantOut: "/a/b\n"},
		{Name: "args", Files: files, Args: []string{"x"}, WantErr: core.ErrArgument},
	}
	testutil.RunCommandTests(t, pwd.Run, tests)
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "/", pwd.Display("."))
	assert.Equal(t, "/docs", pwd.Display("docs"))
}

package shell

import (
	"errors"

	"github.com/spf13/afero"

	"github.com/oor367305-byte/abobusVFS/pkg/core"
	"github.com/oor367305-byte/abobusVFS/pkg/logging"
	"github.com/oor367305-byte/abobusVFS/pkg/sandbox"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// DefaultRoot is the VFS root used when none is configured.
const DefaultRoot = "./vfs_root"

// Config describes how to start an interpreter. IgnoreFile overrides the
// loader's ignore file name when set.
type Config struct {
	Root            string
	FS              afero.Fs
	Out             core.Sink
	IgnoreFile      string
	Logger          *logging.Logger
	ResolverOptions []sandbox.Option
}

// Start loads the tree under cfg.Root and returns an interpreter over it.
// A missing root is reported to the transcript and the session continues
// over an index with no entries, so path commands report not found.
func Start(cfg Config) (*Interpreter, error) {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	if cfg.FS == nil {
		cfg.FS = afero.NewReadOnlyFs(afero.NewOsFs())
	}
	if cfg.Out == nil {
		return nil, errors.New("shell: no output sink")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}

	resolverOpts := append([]sandbox.Option{sandbox.WithLogger(logger.WithPrefix("resolve"))}, cfg.ResolverOptions...)
	resolver := sandbox.NewResolver(cfg.Root, resolverOpts...)
	loadOpts := []vfs.LoadOption{vfs.WithLogger(logger.WithPrefix("vfs"))}
	if cfg.IgnoreFile != "" {
		loadOpts = append(loadOpts, vfs.WithIgnoreFile(cfg.IgnoreFile))
	}
	idx, err := vfs.Load(cfg.FS, cfg.Root, loadOpts...)
	if err != nil {
		if !errors.Is(err, core.ErrStartupNotFound) {
			return nil, err
		}
		logger.Warn("%v; continuing without a tree", err)
		cfg.Out.Append("startup: " + cfg.Root + ": " + core.ErrStartupNotFound.Error() + "\n")
		idx = vfs.EmptyIndex()
	}

	sess := core.NewSession(idx, cfg.FS, resolver, cfg.Out)
	sess.Logger = logger.WithPrefix("shell")
	return New(sess), nil
}

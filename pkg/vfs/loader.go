package vfs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/spf13/afero"

	"github.com/oor367305-byte/abobusVFS/pkg/logging"
)

// HiddenMarker prefixes names that the loader never mirrors.
const HiddenMarker = "."

// DefaultIgnoreFile is read from the root when present. It uses gitignore
// syntax and is itself hidden by the marker rule.
const DefaultIgnoreFile = ".vfsignore"

type loadConfig struct {
	ignoreFile string
	logger     *logging.Logger
}

// LoadOption customizes Load.
type LoadOption func(*loadConfig)

// WithIgnoreFile sets the name of the ignore file looked up in the root.
// An empty name disables ignore-file handling.
func WithIgnoreFile(name string) LoadOption {
	return func(c *loadConfig) { c.ignoreFile = name }
}

// WithLogger routes loader diagnostics to l.
func WithLogger(l *logging.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = l }
}

// Load walks root on fsys once and returns the mirrored index. File contents
// are never read.
func Load(fsys afero.Fs, root string, opts ...LoadOption) (*Index, error) {
	cfg := loadConfig{ignoreFile: DefaultIgnoreFile}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.GetLogger().WithPrefix("loader")
	}

	info, err := fsys.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	l := &loader{
		fsys:   fsys,
		root:   root,
		idx:    EmptyIndex(),
		logger: cfg.logger,
	}
	if cfg.ignoreFile != "" {
		l.ignore, err = loadIgnore(fsys, filepath.Join(root, cfg.ignoreFile), root)
		if err != nil {
			return nil, err
		}
	}

	if err := l.walk(RootKey, root); err != nil {
		return nil, err
	}
	l.logger.Info("loaded %d directories from %s", l.idx.Len(), root)
	return l.idx, nil
}

type loader struct {
	fsys   afero.Fs
	root   string
	idx    *Index
	ignore gitignore.GitIgnore
	logger *logging.Logger
}

func (l *loader) walk(key, dir string) error {
	entry := l.idx.add(key)
	children, err := afero.ReadDir(l.fsys, dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, child := range children {
		name := child.Name()
		if strings.HasPrefix(name, HiddenMarker) {
			continue
		}
		childKey := JoinKey(key, name)
		if l.ignored(childKey, child.IsDir()) {
			l.logger.Debug("ignoring %s", childKey)
			continue
		}
		if !child.IsDir() {
			entry.Files[name] = struct{}{}
			continue
		}
		entry.Subdirs[name] = struct{}{}
		if err := l.walk(childKey, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	l.logger.Trace("indexed %s: %d dirs, %d files", key, len(entry.Subdirs), len(entry.Files))
	return nil
}

func (l *loader) ignored(key string, isDir bool) bool {
	if l.ignore == nil {
		return false
	}
	match := l.ignore.Relative(path.Clean(key), isDir)
	return match != nil && match.Ignore()
}

func loadIgnore(fsys afero.Fs, file, base string) (gitignore.GitIgnore, error) {
	data, err := afero.ReadFile(fsys, file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return gitignore.New(bytes.NewReader(data), base, nil), nil
}

// Package sandbox maps user-typed paths onto VFS keys and keeps every
// resolution inside the mirrored root.
package sandbox

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/oor367305-byte/abobusVFS/pkg/core/envutil"
	"github.com/oor367305-byte/abobusVFS/pkg/logging"
	"github.com/oor367305-byte/abobusVFS/pkg/vfs"
)

// Resolver converts raw paths into canonical keys relative to a real root.
type Resolver struct {
	root     string
	lookup   envutil.LookupFunc
	realpath func(string) string
	logger   *logging.Logger
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithLookup replaces the environment used for variable expansion.
func WithLookup(lookup envutil.LookupFunc) Option {
	return func(r *Resolver) { r.lookup = lookup }
}

// WithoutSymlinks disables symlink evaluation; containment is then checked
// on cleaned absolute paths only. Useful for in-memory filesystems.
func WithoutSymlinks() Option {
	return func(r *Resolver) { r.realpath = cleanAbs }
}

// WithLogger routes resolution traces to l.
func WithLogger(l *logging.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver builds a resolver anchored at root. The root does not need to
// exist; containment is a path computation.
func NewResolver(root string, opts ...Option) *Resolver {
	r := &Resolver{realpath: RealPath}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.GetLogger().WithPrefix("resolve")
	}
	r.root = r.realpath(root)
	return r
}

// Root returns the real, absolute root path.
func (r *Resolver) Root() string { return r.root }

// Expand expands variable references using the resolver's environment.
func (r *Resolver) Expand(s string) string {
	if r.lookup == nil {
		return envutil.ExpandEnv(s)
	}
	return envutil.Expand(s, r.lookup)
}

// Resolve maps raw onto a canonical key. Relative paths are taken from cwd.
// It reports false when the path falls outside the root. Existence in the
// index is not checked.
func (r *Resolver) Resolve(raw, cwd string) (string, bool) {
	expanded := r.Expand(raw)
	var (
		key string
		ok  bool
	)
	if filepath.IsAbs(expanded) {
		key, ok = r.Contains(expanded)
	} else {
		key, ok = joinRelative(cwd, expanded)
	}
	r.logger.Trace("resolve %q (cwd %q) -> %q ok=%v", raw, cwd, key, ok)
	return key, ok
}

// Contains reports whether the absolute path abs lies within the root and
// returns its key when it does.
func (r *Resolver) Contains(abs string) (string, bool) {
	candidate := r.realpath(abs)
	if candidate == r.root {
		return vfs.RootKey, true
	}
	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(candidate, prefix) {
		return "", false
	}
	rel, err := filepath.Rel(r.root, candidate)
	if err != nil {
		return "", false
	}
	return normalizeKey(filepath.ToSlash(rel))
}

// RealPathOf maps a key back to its location under the real root.
func (r *Resolver) RealPathOf(key string) string {
	if key == vfs.RootKey {
		return r.root
	}
	return filepath.Join(r.root, filepath.FromSlash(key))
}

func joinRelative(cwd, rel string) (string, bool) {
	if cwd == "" {
		cwd = vfs.RootKey
	}
	return normalizeKey(path.Join(cwd, filepath.ToSlash(rel)))
}

func normalizeKey(p string) (string, bool) {
	p = path.Clean(p)
	if p == "" || p == "." {
		return vfs.RootKey, true
	}
	if p == ".." || strings.HasPrefix(p, "../") || strings.HasPrefix(p, "/") {
		return "", false
	}
	return p, true
}

// RealPath returns the absolute, symlink-free form of p. Components that do
// not exist are appended unresolved to the deepest existing ancestor.
func RealPath(p string) string {
	p = cleanAbs(p)
	rest := ""
	for {
		if resolved, err := filepath.EvalSymlinks(p); err == nil {
			if rest == "" {
				return resolved
			}
			return filepath.Join(resolved, rest)
		}
		parent := filepath.Dir(p)
		if parent == p {
			if rest == "" {
				return p
			}
			return filepath.Join(p, rest)
		}
		if rest == "" {
			rest = filepath.Base(p)
		} else {
			rest = filepath.Join(filepath.Base(p), rest)
		}
		p = parent
	}
}

func cleanAbs(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

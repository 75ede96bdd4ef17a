// Package vfs holds the in-memory directory index mirrored from a real tree.
//
// Keys are forward-slash paths relative to the mirrored root, with "." naming
// the root itself. The index only grows: entries are added by the loader and
// by Mkdir, never removed.
package vfs

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

// RootKey is the key of the mirrored root directory.
const RootKey = "."

var (
	ErrRootNotFound = errors.New("vfs root not found or not a directory")
	ErrNotExist     = errors.New("no such file or directory")
	ErrExist        = errors.New("already exists")
)

// Permission is the single access tag stored on an entry. It is recorded
// but never enforced.
type Permission uint8

const (
	// PermFull is the loader default for every mirrored directory.
	PermFull Permission = iota
	PermRead
	PermWrite
	PermExec
)

func (p Permission) String() string {
	switch p {
	case PermRead:
		return "r"
	case PermWrite:
		return "w"
	case PermExec:
		return "x"
	default:
		return "rwx"
	}
}

// ParsePermission accepts exactly one of "r", "w" or "x".
func ParsePermission(mode string) (Permission, error) {
	switch mode {
	case "r":
		return PermRead, nil
	case "w":
		return PermWrite, nil
	case "x":
		return PermExec, nil
	}
	return PermFull, fmt.Errorf("invalid mode %q (want r, w or x)", mode)
}

// Entry records one directory's immediate children.
type Entry struct {
	Subdirs map[string]struct{}
	Files   map[string]struct{}
	Perm    Permission
}

func newEntry() *Entry {
	return &Entry{
		Subdirs: make(map[string]struct{}),
		Files:   make(map[string]struct{}),
		Perm:    PermFull,
	}
}

// HasSubdir reports whether name is an immediate child directory.
func (e *Entry) HasSubdir(name string) bool {
	_, ok := e.Subdirs[name]
	return ok
}

// HasFile reports whether name is an immediate child file.
func (e *Entry) HasFile(name string) bool {
	_, ok := e.Files[name]
	return ok
}

// SortedSubdirs returns child directory names in lexical order.
func (e *Entry) SortedSubdirs() []string { return sortedKeys(e.Subdirs) }

// SortedFiles returns child file names in lexical order.
func (e *Entry) SortedFiles() []string { return sortedKeys(e.Files) }

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Index maps canonical keys to directory entries.
type Index struct {
	entries map[string]*Entry
}

// NewIndex returns an index containing only an empty root.
func NewIndex() *Index {
	return &Index{entries: map[string]*Entry{RootKey: newEntry()}}
}

// EmptyIndex returns an index without even a root entry. Every lookup on it
// fails, which is the state of a session whose root could not be loaded.
func EmptyIndex() *Index {
	return &Index{entries: make(map[string]*Entry)}
}

func (idx *Index) Get(key string) (*Entry, bool) {
	e, ok := idx.entries[key]
	return e, ok
}

func (idx *Index) Has(key string) bool {
	_, ok := idx.entries[key]
	return ok
}

func (idx *Index) Len() int { return len(idx.entries) }

// Keys returns every key in lexical order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.entries))
	for k := range idx.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Mkdir inserts an empty entry at key and links it into its parent.
// The parent must already exist.
func (idx *Index) Mkdir(key string) error {
	if idx.Has(key) {
		return fmt.Errorf("%s: %w", key, ErrExist)
	}
	parent, base := SplitKey(key)
	pe, ok := idx.entries[parent]
	if !ok || base == "" {
		return fmt.Errorf("%s: %w", parent, ErrNotExist)
	}
	if pe.HasFile(base) {
		return fmt.Errorf("%s: %w", key, ErrExist)
	}
	idx.entries[key] = newEntry()
	pe.Subdirs[base] = struct{}{}
	return nil
}

// Chmod replaces the permission tag of an existing entry.
func (idx *Index) Chmod(key string, perm Permission) error {
	e, ok := idx.entries[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, ErrNotExist)
	}
	e.Perm = perm
	return nil
}

// add is used by the loader; it does not link into the parent.
func (idx *Index) add(key string) *Entry {
	e := newEntry()
	idx.entries[key] = e
	return e
}

// SplitKey splits a key into its parent key and base name. The root has
// no base name and is its own parent.
func SplitKey(key string) (parent, base string) {
	if key == RootKey || key == "" {
		return RootKey, ""
	}
	i := strings.LastIndexByte(key, '/')
	if i < 0 {
		return RootKey, key
	}
	return key[:i], key[i+1:]
}

// JoinKey appends a child name to a key.
func JoinKey(key, name string) string {
	if key == RootKey || key == "" {
		return path.Clean(name)
	}
	return path.Join(key, name)
}

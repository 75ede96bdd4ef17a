// Package envutil expands environment variable references in user input.
package envutil

import (
	"os"
	"strings"
)

// LookupFunc resolves a variable name. It matches os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Expand replaces $NAME and ${NAME} references using lookup. References to
// unset variables, a lone "$", and an unterminated "${" are left untouched.
func Expand(s string, lookup LookupFunc) string {
	if !strings.Contains(s, "$") {
		return s
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 >= len(s) {
			buf.WriteByte(s[i])
			continue
		}
		if s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				buf.WriteByte(s[i])
				continue
			}
			name := s[i+2 : i+2+end]
			ref := s[i : i+3+end]
			if val, ok := lookupName(name, lookup); ok {
				buf.WriteString(val)
			} else {
				buf.WriteString(ref)
			}
			i += end + 2
			continue
		}
		j := i + 1
		for j < len(s) && isNameByte(s[j]) {
			j++
		}
		if j == i+1 {
			buf.WriteByte(s[i])
			continue
		}
		if val, ok := lookupName(s[i+1:j], lookup); ok {
			buf.WriteString(val)
		} else {
			buf.WriteString(s[i:j])
		}
		i = j - 1
	}
	return buf.String()
}

// ExpandEnv expands references against the process environment.
func ExpandEnv(s string) string {
	return Expand(s, os.LookupEnv)
}

// IsReference reports whether tok is a variable reference marker followed by
// at least one more character, e.g. "$HOME" or "${HOME}".
func IsReference(tok string) bool {
	return len(tok) > 1 && tok[0] == '$'
}

// SeedHome sets HOME from USERPROFILE when HOME is unset, so "$HOME" expands
// on hosts that only provide the profile variable. It reports whether HOME
// was seeded.
func SeedHome() bool {
	if _, ok := os.LookupEnv("HOME"); ok {
		return false
	}
	profile, ok := os.LookupEnv("USERPROFILE")
	if !ok || profile == "" {
		return false
	}
	return os.Setenv("HOME", profile) == nil
}

func lookupName(name string, lookup LookupFunc) (string, bool) {
	if name == "" || lookup == nil {
		return "", false
	}
	return lookup(name)
}

func isNameByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

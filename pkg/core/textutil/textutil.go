// Package textutil provides shared helpers for splitting command lines.
package textutil

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrUnclosedQuote     = errors.New("unclosed quote")
	ErrTrailingBackslash = errors.New("trailing backslash")
)

// SplitTokens splits a command line into words using shell-style quoting.
// Single quotes preserve everything literally. Double quotes group words
// and honor backslash escapes of '"', '\\' and '$'. An unquoted backslash
// escapes the next character. Quoted empty strings yield empty tokens.
func SplitTokens(line string) ([]string, error) {
	var tokens []string
	var buf strings.Builder
	inSingle := false
	inDouble := false
	inWord := false
	escape := false

	for _, c := range line {
		switch {
		case escape:
			if inDouble && c != '"' && c != '\\' && c != '$' {
				buf.WriteByte('\\')
			}
			buf.WriteRune(c)
			escape = false
		case inSingle:
			if c == '\'' {
				inSingle = false
			} else {
				buf.WriteRune(c)
			}
		case c == '\\':
			escape = true
			inWord = true
		case inDouble:
			if c == '"' {
				inDouble = false
			} else {
				buf.WriteRune(c)
			}
		case c == '\'':
			inSingle = true
			inWord = true
		case c == '"':
			inDouble = true
			inWord = true
		case unicode.IsSpace(c):
			if inWord {
				tokens = append(tokens, buf.String())
				buf.Reset()
				inWord = false
			}
		default:
			buf.WriteRune(c)
			inWord = true
		}
	}

	if inSingle || inDouble {
		return nil, ErrUnclosedQuote
	}
	if escape {
		return nil, ErrTrailingBackslash
	}
	if inWord {
		tokens = append(tokens, buf.String())
	}
	return tokens, nil
}

// Package word measures the last space-delimited word of a string.
//
// Only U+0020 separates words. Tabs, newlines and other whitespace are
// ordinary word characters.
package word

import (
	"errors"
	"unicode/utf8"
)

const space = ' '

var ErrNoWord = errors.New("word: no word in input")

// LengthOfLastWord returns the number of characters in the last run of
// non-space characters of s, ignoring trailing spaces. Characters are counted
// as UTF-8 runes. It returns 0 when s is empty or holds only spaces.
func LengthOfLastWord(s string) int {
	start, end := lastWord(s)
	return utf8.RuneCountInString(s[start:end])
}

// LastWord returns the last word of s as a substring of s. It returns
// ErrNoWord when s is empty or holds only spaces.
func LastWord(s string) (string, error) {
	start, end := lastWord(s)
	if start == end {
		return "", ErrNoWord
	}
	return s[start:end], nil
}

// lastWord returns the byte bounds of the last word. Space is a single byte in
// UTF-8 and never appears inside a multi-byte sequence, so scanning bytes is
// safe.
func lastWord(s string) (int, int) {
	i := len(s) - 1
	for i >= 0 && s[i] == space {
		i--
	}
	end := i + 1
	for i >= 0 && s[i] != space {
		i--
	}
	return i + 1, end
}

// LastRunLength is the scan behind LengthOfLastWord for arbitrary element
// sequences: the length of the last run of elements not equal to sep, after
// skipping trailing sep elements.
func LastRunLength[S ~[]E, E comparable](s S, sep E) int {
	i := len(s) - 1
	for i >= 0 && s[i] == sep {
		i--
	}
	length := 0
	for i >= 0 && s[i] != sep {
		length++
		i--
	}
	return length
}

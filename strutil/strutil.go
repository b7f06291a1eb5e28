// Package strutil provides convenience operations over strings: trimming,
// ASCII case conversion, slicing with negative indices, counting, replacing,
// reversing, and delimiter splitting backed by the vector container.
package strutil

import (
	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/charmap"
)

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimLeft returns s without leading whitespace.
func TrimLeft(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimRight returns s without trailing whitespace.
func TrimRight(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}

// Trim returns s without leading and trailing whitespace.
func Trim(s string) string {
	return TrimRight(TrimLeft(s))
}

// ToLowerASCII lowercases the ASCII letters of s. Bytes outside A-Z,
// including multi-byte UTF-8 sequences, pass through unchanged.
func ToLowerASCII(s string) string {
	out := []byte(s)
	for i, b := range out {
		if b >= 'A' && b <= 'Z' {
			out[i] = b + ('a' - 'A')
		}
	}
	return string(out)
}

// ToUpperASCII uppercases the ASCII letters of s. Bytes outside a-z,
// including multi-byte UTF-8 sequences, pass through unchanged.
func ToUpperASCII(s string) string {
	out := []byte(s)
	for i, b := range out {
		if b >= 'a' && b <= 'z' {
			out[i] = b - ('a' - 'A')
		}
	}
	return string(out)
}

// HasPrefix reports whether s starts with the given prefix.
func HasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// HasSuffix reports whether s ends with the given suffix.
func HasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// Slice returns the substring of s from start (inclusive) to end
// (exclusive). Negative indices count from the end of the string; indices
// are clamped to the string bounds, and an empty range yields "".
func Slice(s string, start, end int) string {
	if start < 0 {
		start += len(s)
	}
	if end < 0 {
		end += len(s)
	}
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= len(s) || start >= end {
		return ""
	}
	return s[start:end]
}

// Count returns the number of non-overlapping occurrences of needle in s.
// An empty needle counts zero occurrences.
func Count(s, needle string) int {
	if len(needle) == 0 {
		return 0
	}
	count := 0
	for i := 0; i+len(needle) <= len(s); {
		if s[i:i+len(needle)] == needle {
			count++
			i += len(needle)
		} else {
			i++
		}
	}
	return count
}

// Replace returns s with every non-overlapping occurrence of needle
// replaced by replacement. An empty needle returns s unchanged.
func Replace(s, needle, replacement string) string {
	if len(needle) == 0 {
		return s
	}
	out := make([]byte, 0, len(s)+(len(replacement)-len(needle))*Count(s, needle))
	for i := 0; i < len(s); {
		if i+len(needle) <= len(s) && s[i:i+len(needle)] == needle {
			out = append(out, replacement...)
			i += len(needle)
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// Reverse returns s with its bytes in reverse order. Multi-byte UTF-8
// sequences are not kept intact; the operation is byte-oriented by contract.
func Reverse(s string) string {
	out := []byte(s)
	slices.Reverse(out)
	return string(out)
}

// DecodeLatin1 converts ISO 8859-1 (Latin-1) encoded bytes into a UTF-8
// string. Every byte is a valid Latin-1 code point, so the conversion
// cannot fail for well-formed inputs.
func DecodeLatin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

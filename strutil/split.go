package strutil

import "github.com/stratakit/strata/vector"

// Split divides s at every occurrence of the delimiter byte and returns the
// parts, in order, in a growable vector sized to the number of parts.
// Adjacent delimiters produce empty parts, as do leading and trailing
// delimiters; a string without the delimiter yields a single part.
// The caller owns the returned vector.
func Split(s string, delim byte) (*vector.Vector[string], error) {
	parts, err := vector.NewVector[string](Count(s, string(delim)) + 1)
	if err != nil {
		return nil, err
	}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == delim {
			if err := parts.Push(s[start:i]); err != nil {
				return nil, err
			}
			start = i + 1
		}
	}
	if err := parts.Push(s[start:]); err != nil {
		return nil, err
	}
	return parts, nil
}

// Join concatenates the parts held by the given vector, inserting sep
// between consecutive parts.
func Join(parts *vector.Vector[string], sep string) string {
	count := parts.Length()
	if count == 0 {
		return ""
	}

	total := len(sep) * (count - 1)
	parts.ForEach(func(_ int, part string) {
		total += len(part)
	})

	out := make([]byte, 0, total)
	parts.ForEach(func(index int, part string) {
		if index > 0 {
			out = append(out, sep...)
		}
		out = append(out, part...)
	})
	return string(out)
}

// Package codec provides byte-level codecs used as fixed building blocks,
// currently the standard Base64 encoding.
package codec

import (
	"fmt"

	"github.com/stratakit/strata/common"
)

const (
	// ErrInvalidLength is returned when a Base64 input is not a multiple
	// of four characters.
	ErrInvalidLength = common.ConstError("base64 input length is not a multiple of four")
	// ErrInvalidByte is returned when a Base64 input contains a byte
	// outside the standard alphabet or misplaced padding.
	ErrInvalidByte = common.ConstError("invalid base64 input byte")
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Values = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		table[base64Alphabet[i]] = int8(i)
	}
	return table
}()

// Base64EncodedLen returns the length of the Base64 encoding of n input bytes.
func Base64EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Base64Encode encodes the given bytes using the standard Base64 alphabet
// with '=' padding. Input is processed in 3-byte groups producing 4-character
// groups; a 1- or 2-byte final group is padded to 4 characters with two or
// one '=' respectively.
func Base64Encode(in []byte) string {
	out := make([]byte, 0, Base64EncodedLen(len(in)))

	i := 0
	for ; i+2 < len(in); i += 3 {
		g := uint32(in[i])<<16 | uint32(in[i+1])<<8 | uint32(in[i+2])
		out = append(out,
			base64Alphabet[g>>18&0x3F],
			base64Alphabet[g>>12&0x3F],
			base64Alphabet[g>>6&0x3F],
			base64Alphabet[g&0x3F],
		)
	}

	switch len(in) - i {
	case 1:
		g := uint32(in[i]) << 16
		out = append(out,
			base64Alphabet[g>>18&0x3F],
			base64Alphabet[g>>12&0x3F],
			'=', '=',
		)
	case 2:
		g := uint32(in[i])<<16 | uint32(in[i+1])<<8
		out = append(out,
			base64Alphabet[g>>18&0x3F],
			base64Alphabet[g>>12&0x3F],
			base64Alphabet[g>>6&0x3F],
			'=',
		)
	}

	return string(out)
}

// Base64Decode decodes a standard Base64 string. Padding characters
// contribute zero value bits but control how many bytes the final group
// emits: three for a full group, one fewer per trailing '='. Padding is
// only accepted in the last one or two positions of the input.
func Base64Decode(in string) ([]byte, error) {
	if len(in)%4 != 0 {
		return nil, ErrInvalidLength
	}
	out := make([]byte, 0, len(in)/4*3)

	for i := 0; i < len(in); i += 4 {
		var g uint32
		pads := 0
		for j := 0; j < 4; j++ {
			b := in[i+j]
			if b == '=' {
				// Padding may only terminate the input: the last byte,
				// or the last two bytes together.
				last := i+j >= len(in)-2 && (j == 3 || in[i+3] == '=')
				if !last || j < 2 {
					return nil, fmt.Errorf("%w: misplaced '=' at offset %d", ErrInvalidByte, i+j)
				}
				pads++
				g <<= 6
				continue
			}
			v := base64Values[b]
			if v < 0 {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidByte, b, i+j)
			}
			if pads > 0 {
				return nil, fmt.Errorf("%w: data after '=' at offset %d", ErrInvalidByte, i+j)
			}
			g = g<<6 | uint32(v)
		}

		out = append(out, byte(g>>16))
		if pads < 2 {
			out = append(out, byte(g>>8))
		}
		if pads < 1 {
			out = append(out, byte(g))
		}
	}

	return out, nil
}

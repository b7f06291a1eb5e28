// Package digest provides the digest primitives of the library: a streaming
// MD5 implementation and a Keccak-256 convenience wrapper.
package digest

import (
	"encoding/binary"
	"math/bits"
)

// MD5Size is the size of an MD5 digest in bytes.
const MD5Size = 16

// md5BlockSize is the block size of the MD5 compression function in bytes.
const md5BlockSize = 64

// Per-round left-rotation amounts.
var md5Shifts = [md5BlockSize]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// Additive constants, floor(2^32 * abs(sin(i+1))).
var md5Consts = [md5BlockSize]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// MD5 is a streaming MD5 digest. The zero value is not usable; create
// instances with NewMD5. It is not safe for concurrent use.
type MD5 struct {
	a, b, c, d uint32
	buf        [md5BlockSize]byte
	buffered   int
	size       uint64
}

// NewMD5 returns a fresh streaming MD5 digest.
func NewMD5() *MD5 {
	d := &MD5{}
	d.Reset()
	return d
}

// Reset restores the digest to its initial state.
func (d *MD5) Reset() {
	d.a = 0x67452301
	d.b = 0xefcdab89
	d.c = 0x98badcfe
	d.d = 0x10325476
	d.buffered = 0
	d.size = 0
}

// Write absorbs more input into the digest. It never fails; the error
// return satisfies io.Writer.
func (d *MD5) Write(p []byte) (int, error) {
	d.size += uint64(len(p))
	d.absorb(p)
	return len(p), nil
}

// Sum16 returns the digest of all input written so far. The digest state is
// not consumed; more input may be written afterwards.
func (d *MD5) Sum16() [MD5Size]byte {
	// Pad and finalize a copy so the stream can continue.
	tmp := *d

	var padding [md5BlockSize]byte
	padding[0] = 0x80
	padLen := 56 - tmp.buffered
	if tmp.buffered >= 56 {
		padLen = 120 - tmp.buffered
	}
	tmp.absorb(padding[:padLen])

	var trailer [8]byte
	binary.LittleEndian.PutUint64(trailer[:], d.size*8)
	tmp.absorb(trailer[:])

	var out [MD5Size]byte
	binary.LittleEndian.PutUint32(out[0:], tmp.a)
	binary.LittleEndian.PutUint32(out[4:], tmp.b)
	binary.LittleEndian.PutUint32(out[8:], tmp.c)
	binary.LittleEndian.PutUint32(out[12:], tmp.d)
	return out
}

// MD5Sum returns the MD5 digest of the given data.
func MD5Sum(data []byte) [MD5Size]byte {
	d := NewMD5()
	d.Write(data)
	return d.Sum16()
}

// absorb feeds input into the compression function without counting it
// towards the message length.
func (d *MD5) absorb(p []byte) {
	if d.buffered > 0 {
		n := copy(d.buf[d.buffered:], p)
		d.buffered += n
		p = p[n:]
		if d.buffered == md5BlockSize {
			d.block(d.buf[:])
			d.buffered = 0
		}
	}
	for len(p) >= md5BlockSize {
		d.block(p[:md5BlockSize])
		p = p[md5BlockSize:]
	}
	if len(p) > 0 {
		d.buffered = copy(d.buf[:], p)
	}
}

func (d *MD5) block(p []byte) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, dd := d.a, d.b, d.c, d.d
	for i := 0; i < md5BlockSize; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & dd)
			g = i
		case i < 32:
			f = (b & dd) | (c &^ dd)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ dd
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^dd)
			g = (7 * i) % 16
		}
		f += a + md5Consts[i] + m[g]
		a = dd
		dd = c
		c = b
		b += bits.RotateLeft32(f, md5Shifts[i])
	}

	d.a += a
	d.b += b
	d.c += c
	d.d += dd
}

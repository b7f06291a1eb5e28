package digest

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// Hash is a 32-byte Keccak-256 digest value.
type Hash [32]byte

var keccakPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

// keccakState is the subset of the sha3 state used here; the concrete type
// returned by sha3.NewLegacyKeccak256 supports direct reads from the sponge.
type keccakState interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

// Keccak256 computes the Keccak-256 digest of the given data. Hasher states
// are pooled and reused across calls.
func Keccak256(data []byte) Hash {
	hasher := keccakPool.Get().(keccakState)
	hasher.Reset()
	hasher.Write(data)
	var res Hash
	hasher.Read(res[:])
	keccakPool.Put(hasher)
	return res
}

package common

//go:generate mockgen -source hash.go -destination hash_mocks.go -package common

// BytesHasher is an interface for types implementing hash functions over
// raw byte sequences.
type BytesHasher interface {
	Hash(key []byte) uint64
}

// DJB2Hasher hashes byte sequences using the DJB2 XOR variant: the hash is
// seeded with 5381 and each byte is folded via hash = hash*33 ^ byte.
// The function is fast and well distributed for trusted inputs, but it is
// not collision resistant against adversarial keys.
type DJB2Hasher struct{}

func (DJB2Hasher) Hash(key []byte) uint64 {
	hash := uint64(5381)
	for _, b := range key {
		hash = ((hash << 5) + hash) ^ uint64(b)
	}
	return hash
}

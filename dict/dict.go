// Package dict provides a hash table mapping arbitrary byte-sequence keys
// to values, built from a fixed number of independently chained buckets.
package dict

import (
	"bytes"

	"github.com/stratakit/strata/common"
)

// Recommended bucket size classes. The bucket count is fixed for the
// lifetime of a dictionary, so callers pick a class matching the expected
// load; underestimating degrades lookups to scans of long chains.
const (
	BucketsSmall  = 32
	BucketsMedium = 128
	BucketsBig    = 1024
	BucketsLarge  = 4096
)

// ErrInvalidArgument is returned for a non-positive bucket count, a nil
// key passed to Set, or any mutation of a freed dictionary.
const ErrInvalidArgument = common.ConstError("invalid argument")

type entry[V any] struct {
	key  []byte
	val  V
	next *entry[V]
}

// Dict is a byte-keyed hash table with a fixed bucket count and chained
// entries. Two keys are equal iff their lengths and all their bytes match.
// The bucket array is never resized after construction; there are no
// rehashing pauses, at the price of unbounded chain growth when the bucket
// count underestimates the load.
//
// A Dict is not safe for concurrent use; sharing one between goroutines
// requires external synchronization.
type Dict[V any] struct {
	buckets      []*entry[V]
	size         int
	hasher       common.BytesHasher
	releaseKey   func([]byte)
	releaseValue func(V)
	freed        bool
}

// Option configures a dictionary at construction time.
type Option[V any] func(*Dict[V])

// WithHasher replaces the default DJB2 hash function used to route keys
// to buckets.
func WithHasher[V any](hasher common.BytesHasher) Option[V] {
	return func(d *Dict[V]) { d.hasher = hasher }
}

// WithKeyReleaser registers a callback invoked exactly once per stored key
// when the dictionary is freed. Overwriting an existing key keeps the stored
// key and never releases it early.
func WithKeyReleaser[V any](release func(key []byte)) Option[V] {
	return func(d *Dict[V]) { d.releaseKey = release }
}

// WithValueReleaser registers a callback invoked on a value when it is
// superseded by an overwrite and on every still-live value when the
// dictionary is freed.
func WithValueReleaser[V any](release func(val V)) Option[V] {
	return func(d *Dict[V]) { d.releaseValue = release }
}

// NewDict creates a dictionary with the given fixed bucket count.
func NewDict[V any](bucketCount int, opts ...Option[V]) (*Dict[V], error) {
	if bucketCount <= 0 {
		return nil, ErrInvalidArgument
	}
	d := &Dict[V]{
		buckets: make([]*entry[V], bucketCount),
		hasher:  common.DJB2Hasher{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Set inserts or updates the value stored under the given key. If the key
// is already present, the old value is handed to the value releaser (if
// any) and replaced in place; the stored key is kept. New entries are
// prepended to their bucket's chain.
//
// The key slice is stored as given, without copying; the caller must not
// mutate its bytes while the entry lives. Callers needing isolation copy
// the key before insertion.
func (d *Dict[V]) Set(key []byte, val V) error {
	if d.freed || key == nil {
		return ErrInvalidArgument
	}
	idx := d.bucketOf(key)
	for e := d.buckets[idx]; e != nil; e = e.next {
		if bytes.Equal(e.key, key) {
			if d.releaseValue != nil {
				d.releaseValue(e.val)
			}
			e.val = val
			return nil
		}
	}
	d.buckets[idx] = &entry[V]{key: key, val: val, next: d.buckets[idx]}
	d.size++
	return nil
}

// Get returns the value stored under the given key, or false if the key is
// not present. A nil key is never present.
func (d *Dict[V]) Get(key []byte) (V, bool) {
	var zero V
	if d.freed || key == nil {
		return zero, false
	}
	for e := d.buckets[d.bucketOf(key)]; e != nil; e = e.next {
		if bytes.Equal(e.key, key) {
			return e.val, true
		}
	}
	return zero, false
}

// Size returns the number of live entries across all buckets.
func (d *Dict[V]) Size() int {
	return d.size
}

// BucketCount returns the fixed number of buckets chosen at construction.
func (d *Dict[V]) BucketCount() int {
	return len(d.buckets)
}

// ForEach applies the given operation to every live entry. No ordering is
// guaranteed, neither across buckets nor within a chain.
func (d *Dict[V]) ForEach(op func(key []byte, val V)) {
	for _, head := range d.buckets {
		for e := head; e != nil; e = e.next {
			op(e.key, e.val)
		}
	}
}

// Free walks every chain, invoking the key and value releasers (if set)
// exactly once per still-live entry, then discards all entries and the
// bucket array. Free is idempotent.
func (d *Dict[V]) Free() {
	if d == nil || d.freed {
		return
	}
	for i, head := range d.buckets {
		for e := head; e != nil; e = e.next {
			if d.releaseKey != nil {
				d.releaseKey(e.key)
			}
			if d.releaseValue != nil {
				d.releaseValue(e.val)
			}
		}
		d.buckets[i] = nil
	}
	d.buckets = nil
	d.size = 0
	d.freed = true
}

func (d *Dict[V]) bucketOf(key []byte) int {
	return int(d.hasher.Hash(key) % uint64(len(d.buckets)))
}

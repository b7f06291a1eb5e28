package vector

import (
	"golang.org/x/exp/slices"

	"github.com/stratakit/strata/common"
)

// DefaultCapacity is the initial capacity used when a vector is created
// with an unspecified (zero) capacity.
const DefaultCapacity = 4

const (
	// ErrInvalidArgument is returned for invalid construction parameters
	// and for reserve requests below the current capacity.
	ErrInvalidArgument = common.ConstError("invalid argument")
	// ErrIndexOutOfRange is returned for indexed access beyond the current length.
	ErrIndexOutOfRange = common.ConstError("index out of range")
	// ErrEmptyVector is returned when popping from a vector of length zero.
	ErrEmptyVector = common.ConstError("vector is empty")
	// ErrCapacityOverflow is returned when a growth or reserve operation
	// would exceed the addressable capacity.
	ErrCapacityOverflow = common.ConstError("capacity overflow")
	// ErrFreed is returned for any operation on a vector after Free.
	ErrFreed = common.ConstError("vector is freed")
)

const maxCapacity = int(^uint(0) >> 1)

// Vector is a growable, index-addressable sequence of elements of type T.
// The backing storage is owned exclusively by the vector; capacity grows by
// doubling and never shrinks. Vectors are not safe for concurrent use and
// require external synchronization when shared between goroutines.
type Vector[T any] struct {
	cells  []T // len(cells) is the capacity
	length int
	freed  bool
}

// NewVector creates an empty vector with the given initial capacity.
// A capacity of zero selects DefaultCapacity; a negative capacity is
// rejected with ErrInvalidArgument.
func NewVector[T any](initialCapacity int) (*Vector[T], error) {
	if initialCapacity < 0 {
		return nil, ErrInvalidArgument
	}
	if initialCapacity == 0 {
		initialCapacity = DefaultCapacity
	}
	return &Vector[T]{cells: make([]T, initialCapacity)}, nil
}

// Length returns the number of elements currently in the vector.
func (v *Vector[T]) Length() int {
	return v.length
}

// Capacity returns the number of allocated element slots.
func (v *Vector[T]) Capacity() int {
	return len(v.cells)
}

// Get returns a copy of the element at the given index.
func (v *Vector[T]) Get(index int) (T, error) {
	var zero T
	if v.freed {
		return zero, ErrFreed
	}
	if index < 0 || index >= v.length {
		return zero, ErrIndexOutOfRange
	}
	return v.cells[index], nil
}

// At returns a pointer to the in-place storage of the element at the given
// index. The pointer is valid only until the next operation that may grow
// the vector (Push past capacity, or Reserve); callers must not retain it
// across such operations.
func (v *Vector[T]) At(index int) (*T, error) {
	if v.freed {
		return nil, ErrFreed
	}
	if index < 0 || index >= v.length {
		return nil, ErrIndexOutOfRange
	}
	return &v.cells[index], nil
}

// Set overwrites the element at the given index in place. It never resizes.
func (v *Vector[T]) Set(index int, value T) error {
	if v.freed {
		return ErrFreed
	}
	if index < 0 || index >= v.length {
		return ErrIndexOutOfRange
	}
	v.cells[index] = value
	return nil
}

// Push appends one element to the end of the vector. If the vector is full,
// the capacity is doubled before the append; a failed growth leaves the
// vector unchanged and is reported to the caller.
func (v *Vector[T]) Push(value T) error {
	if v.freed {
		return ErrFreed
	}
	if v.length == len(v.cells) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.cells[v.length] = value
	v.length++
	return nil
}

// Pop removes the last element and returns it. The slot is only logically
// removed; its content is overwritten by a future Set or Push.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v.freed {
		return zero, ErrFreed
	}
	if v.length == 0 {
		return zero, ErrEmptyVector
	}
	v.length--
	return v.cells[v.length], nil
}

// Reserve grows the backing storage to hold at least newCapacity elements.
// Requests below the current capacity are rejected with ErrInvalidArgument.
// The length is not changed.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if v.freed {
		return ErrFreed
	}
	if newCapacity < len(v.cells) {
		return ErrInvalidArgument
	}
	if newCapacity == len(v.cells) {
		return nil
	}
	cells := make([]T, newCapacity)
	copy(cells, v.cells)
	v.cells = cells
	return nil
}

// Free releases the backing storage. If purge is set, the storage is
// zeroed first so sensitive element data does not linger on the heap
// until collection. Free is idempotent; any later operation on the
// vector reports ErrFreed.
func (v *Vector[T]) Free(purge bool) {
	if v == nil || v.freed {
		return
	}
	if purge {
		var zero T
		for i := range v.cells {
			v.cells[i] = zero
		}
	}
	v.cells = nil
	v.length = 0
	v.freed = true
}

// Clone returns an independent copy of the vector with the same length
// and capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v.freed {
		return nil, ErrFreed
	}
	return &Vector[T]{
		cells:  slices.Clone(v.cells),
		length: v.length,
	}, nil
}

// ToSlice returns a copy of the live elements.
func (v *Vector[T]) ToSlice() []T {
	if v.freed {
		return nil
	}
	return slices.Clone(v.cells[:v.length])
}

// ForEach applies the given operation to each live element in index order.
func (v *Vector[T]) ForEach(op func(index int, value T)) {
	for i := 0; i < v.length; i++ {
		op(i, v.cells[i])
	}
}

func (v *Vector[T]) grow() error {
	capacity := len(v.cells)
	if capacity > maxCapacity/2 {
		return ErrCapacityOverflow
	}
	newCapacity := capacity * 2
	if capacity == 0 {
		newCapacity = DefaultCapacity
	}
	cells := make([]T, newCapacity)
	copy(cells, v.cells)
	v.cells = cells
	return nil
}

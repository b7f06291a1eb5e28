package vector

// RawVector is a type-erased growable container for elements whose size is
// only known at runtime as a byte count. It exists for boundaries where a
// statically typed Vector cannot be used (interop, generic byte-level
// plumbing); every access validates the element size and index, so the raw
// byte arithmetic never escapes this type.
type RawVector struct {
	cellSize int
	buf      []byte // len(buf) is capacity * cellSize
	length   int
	freed    bool
}

// NewRawVector creates an empty raw vector for elements of cellSize bytes.
// cellSize must be positive; an initial capacity of zero selects
// DefaultCapacity.
func NewRawVector(cellSize, initialCapacity int) (*RawVector, error) {
	if cellSize <= 0 || initialCapacity < 0 {
		return nil, ErrInvalidArgument
	}
	if initialCapacity == 0 {
		initialCapacity = DefaultCapacity
	}
	if initialCapacity > maxCapacity/cellSize {
		return nil, ErrCapacityOverflow
	}
	return &RawVector{
		cellSize: cellSize,
		buf:      make([]byte, cellSize*initialCapacity),
	}, nil
}

// Length returns the number of elements currently in the vector.
func (v *RawVector) Length() int {
	return v.length
}

// CellSize returns the size in bytes of each element.
func (v *RawVector) CellSize() int {
	return v.cellSize
}

// Capacity returns the number of allocated element slots.
func (v *RawVector) Capacity() int {
	return len(v.buf) / v.cellSize
}

// Set copies exactly CellSize bytes from value into the slot at the given
// index, overwriting it in place. The value length must match the cell size.
func (v *RawVector) Set(index int, value []byte) error {
	if v.freed {
		return ErrFreed
	}
	if len(value) != v.cellSize {
		return ErrInvalidArgument
	}
	if index < 0 || index >= v.length {
		return ErrIndexOutOfRange
	}
	copy(v.buf[index*v.cellSize:], value)
	return nil
}

// At returns the in-place storage of the element at the given index. The
// returned slice aliases the backing buffer and is valid only until the
// next operation that may grow the vector (Push past capacity, or Reserve).
func (v *RawVector) At(index int) ([]byte, error) {
	if v.freed {
		return nil, ErrFreed
	}
	if index < 0 || index >= v.length {
		return nil, ErrIndexOutOfRange
	}
	start := index * v.cellSize
	return v.buf[start : start+v.cellSize : start+v.cellSize], nil
}

// Push appends one element, growing the capacity by doubling when full.
// The value length must match the cell size. On a failed growth the vector
// is left unchanged.
func (v *RawVector) Push(value []byte) error {
	if v.freed {
		return ErrFreed
	}
	if len(value) != v.cellSize {
		return ErrInvalidArgument
	}
	if v.length*v.cellSize == len(v.buf) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	copy(v.buf[v.length*v.cellSize:], value)
	v.length++
	return nil
}

// Pop removes the last element and returns its storage. The bytes remain
// physically present until overwritten, but must be treated as logically
// absent; the returned slice aliases the backing buffer.
func (v *RawVector) Pop() ([]byte, error) {
	if v.freed {
		return nil, ErrFreed
	}
	if v.length == 0 {
		return nil, ErrEmptyVector
	}
	v.length--
	start := v.length * v.cellSize
	return v.buf[start : start+v.cellSize : start+v.cellSize], nil
}

// Reserve grows the backing storage to hold at least newCapacity elements.
// Requests below the current capacity are rejected with ErrInvalidArgument.
func (v *RawVector) Reserve(newCapacity int) error {
	if v.freed {
		return ErrFreed
	}
	if newCapacity < v.Capacity() {
		return ErrInvalidArgument
	}
	if newCapacity == v.Capacity() {
		return nil
	}
	if newCapacity > maxCapacity/v.cellSize {
		return ErrCapacityOverflow
	}
	buf := make([]byte, newCapacity*v.cellSize)
	copy(buf, v.buf)
	v.buf = buf
	return nil
}

// Free releases the backing storage, zeroing it first if purge is set.
// Free is idempotent; any later operation reports ErrFreed.
func (v *RawVector) Free(purge bool) {
	if v == nil || v.freed {
		return
	}
	if purge {
		for i := range v.buf {
			v.buf[i] = 0
		}
	}
	v.buf = nil
	v.length = 0
	v.freed = true
}

func (v *RawVector) grow() error {
	capacity := v.Capacity()
	if capacity > maxCapacity/2 || capacity*2 > maxCapacity/v.cellSize {
		return ErrCapacityOverflow
	}
	newCapacity := capacity * 2
	if capacity == 0 {
		newCapacity = DefaultCapacity
	}
	buf := make([]byte, newCapacity*v.cellSize)
	copy(buf, v.buf)
	v.buf = buf
	return nil
}

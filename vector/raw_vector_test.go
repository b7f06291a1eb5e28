package vector

import (
	"bytes"
	"errors"
	"testing"
)

func TestRawVectorRejectsZeroCellSize(t *testing.T) {
	if _, err := NewRawVector(0, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewRawVector(-1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRawVectorPushAtRoundTrip(t *testing.T) {
	v, err := NewRawVector(4, 0)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	if got, want := v.CellSize(), 4; got != want {
		t.Fatalf("unexpected cell size, wanted %d, got %d", want, got)
	}
	const count = 20
	for i := 0; i < count; i++ {
		cell := []byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3)}
		if err := v.Push(cell); err != nil {
			t.Fatalf("push %d failed: %v", i, err)
		}
	}
	if got := v.Length(); got != count {
		t.Fatalf("unexpected length, wanted %d, got %d", count, got)
	}
	for i := 0; i < count; i++ {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("at %d failed: %v", i, err)
		}
		want := []byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3)}
		if !bytes.Equal(got, want) {
			t.Errorf("unexpected cell at %d, wanted %x, got %x", i, want, got)
		}
	}
}

func TestRawVectorValidatesValueLength(t *testing.T) {
	v, err := NewRawVector(4, 0)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	if err := v.Push([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for short value, got %v", err)
	}
	if err := v.Push([]byte{1, 2, 3, 4, 5}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for long value, got %v", err)
	}
	if err := v.Push([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if err := v.Set(0, []byte{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for short set, got %v", err)
	}
}

func TestRawVectorGrowthDoublesCapacity(t *testing.T) {
	v, err := NewRawVector(2, 3)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	wantCapacities := []int{3, 6, 12, 24}
	capacities := []int{v.Capacity()}
	for i := 0; i < 20; i++ {
		if err := v.Push([]byte{byte(i), byte(i)}); err != nil {
			t.Fatalf("push failed: %v", err)
		}
		if v.Length() > v.Capacity() {
			t.Fatalf("length %d exceeds capacity %d", v.Length(), v.Capacity())
		}
		if c := v.Capacity(); c != capacities[len(capacities)-1] {
			capacities = append(capacities, c)
		}
	}
	if len(capacities) != len(wantCapacities) {
		t.Fatalf("unexpected capacity sequence %v, wanted %v", capacities, wantCapacities)
	}
	for i, c := range capacities {
		if c != wantCapacities[i] {
			t.Errorf("unexpected capacity at step %d, wanted %d, got %d", i, wantCapacities[i], c)
		}
	}
}

func TestRawVectorPopReturnsLastCell(t *testing.T) {
	v, err := NewRawVector(2, 0)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	if err := v.Push([]byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	got, err := v.Pop()
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0xAA, 0xBB}) {
		t.Errorf("unexpected popped cell: %x", got)
	}
	if v.Length() != 0 {
		t.Errorf("pop did not decrement length")
	}
	if _, err := v.Pop(); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("expected ErrEmptyVector, got %v", err)
	}
}

func TestRawVectorAtAliasesStorage(t *testing.T) {
	v, err := NewRawVector(2, 0)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	if err := v.Push([]byte{1, 2}); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	cell, err := v.At(0)
	if err != nil {
		t.Fatalf("at failed: %v", err)
	}
	cell[0] = 9
	got, _ := v.At(0)
	if !bytes.Equal(got, []byte{9, 2}) {
		t.Errorf("write through At is not visible, got %x", got)
	}
}

func TestRawVectorReserveChecks(t *testing.T) {
	v, err := NewRawVector(8, 4)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	if err := v.Reserve(2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for shrink, got %v", err)
	}
	if err := v.Reserve(32); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if got := v.Capacity(); got != 32 {
		t.Errorf("unexpected capacity after reserve: %d", got)
	}
}

func TestRawVectorFreeIsIdempotent(t *testing.T) {
	v, err := NewRawVector(4, 0)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	if err := v.Push([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	v.Free(true)
	v.Free(true) // must not panic
	if err := v.Push([]byte{1, 2, 3, 4}); !errors.Is(err, ErrFreed) {
		t.Errorf("expected ErrFreed, got %v", err)
	}
	if _, err := v.At(0); !errors.Is(err, ErrFreed) {
		t.Errorf("expected ErrFreed, got %v", err)
	}
	var nilVector *RawVector
	nilVector.Free(false) // must not panic
}

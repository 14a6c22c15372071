package arena

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(ctx context.Context, amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrArenaFull is returned when an allocation exceeds the remaining capacity.
	ErrArenaFull = errors.New("arena: arena is full")
	// ErrAllocationFailed is returned when the backing memory could not be reserved.
	ErrAllocationFailed = errors.New("arena: allocation failed")
)

// Size returns the bytes taken by n values of T.
func Size[T any](n int) int64 {
	var zero T
	return int64(n) * int64(unsafe.Sizeof(zero))
}

// Reservation is memory acquired from a MemoryAcquirer in a single call.
type Reservation struct {
	mem   MemoryAcquirer
	bytes int64
	once  sync.Once
}

// Reserve acquires bytes from mem at once. A nil mem reserves nothing.
func Reserve(ctx context.Context, mem MemoryAcquirer, bytes int64) (*Reservation, error) {
	if bytes < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, bytes)
	}
	if mem != nil {
		if err := mem.AcquireMemory(ctx, bytes); err != nil {
			return nil, fmt.Errorf("%w: reserve %d bytes: %w", ErrAllocationFailed, bytes, err)
		}
	}
	return &Reservation{mem: mem, bytes: bytes}, nil
}

// Release gives the memory back. Calls after the first are no-ops.
func (r *Reservation) Release() {
	r.once.Do(func() {
		if r.mem != nil {
			r.mem.ReleaseMemory(r.bytes)
		}
	})
}

// Slab is a contiguous arena of T values.
type Slab[T any] struct {
	buf []T
	off int
}

// New creates a Slab with room for capacity values of T.
func New[T any](capacity int) (*Slab[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrAllocationFailed, capacity)
	}
	return &Slab[T]{buf: make([]T, capacity)}, nil
}

// Alloc returns a zeroed view of n values.
// The view's capacity is clipped so appends never spill into a neighbour.
func (s *Slab[T]) Alloc(n int) ([]T, error) {
	if n < 0 || s.off+n > len(s.buf) {
		return nil, ErrArenaFull
	}
	v := s.buf[s.off : s.off+n : s.off+n]
	s.off += n
	clear(v)
	return v, nil
}

// Len returns the number of values handed out so far.
func (s *Slab[T]) Len() int { return s.off }

// Cap returns the total number of values the slab can hold.
func (s *Slab[T]) Cap() int { return len(s.buf) }

// Free drops the backing array. It is safe to call Free more than once.
func (s *Slab[T]) Free() {
	s.buf = nil
	s.off = 0
}

package arena

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcquirer struct {
	limit int64
	used  int64
	calls int
}

func (f *fakeAcquirer) AcquireMemory(_ context.Context, amount int64) error {
	f.calls++
	if f.used+amount > f.limit {
		return errors.New("limit exceeded")
	}
	f.used += amount
	return nil
}

func (f *fakeAcquirer) ReleaseMemory(amount int64) { f.used -= amount }

func TestSlab_Alloc(t *testing.T) {
	s, err := New[float64](10)
	require.NoError(t, err)
	defer s.Free()

	a, err := s.Alloc(4)
	require.NoError(t, err)
	b, err := s.Alloc(6)
	require.NoError(t, err)

	assert.Len(t, a, 4)
	assert.Len(t, b, 6)
	assert.Equal(t, 4, cap(a))
	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 10, s.Cap())

	a[3] = 1
	assert.Zero(t, b[0], "views must not overlap")

	_, err = s.Alloc(1)
	assert.ErrorIs(t, err, ErrArenaFull)
}

func TestSlab_FreeTwice(t *testing.T) {
	s, err := New[int](3)
	require.NoError(t, err)

	s.Free()
	s.Free()
	assert.Zero(t, s.Cap())
	assert.Zero(t, s.Len())
}

func TestSlab_NegativeCapacity(t *testing.T) {
	_, err := New[float64](-1)
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestSize(t *testing.T) {
	assert.Equal(t, int64(80), Size[float64](10))
	assert.Equal(t, int64(12), Size[int32](3))
	assert.Zero(t, Size[float64](0))
}

func TestReserve(t *testing.T) {
	mem := &fakeAcquirer{limit: 100}

	r, err := Reserve(context.Background(), mem, 80)
	require.NoError(t, err)
	assert.Equal(t, int64(80), mem.used)
	assert.Equal(t, 1, mem.calls)

	_, err = Reserve(context.Background(), mem, 21)
	assert.ErrorIs(t, err, ErrAllocationFailed)

	r.Release()
	r.Release()
	assert.Zero(t, mem.used)
}

func TestReserve_NilAcquirer(t *testing.T) {
	r, err := Reserve(context.Background(), nil, 1<<40)
	require.NoError(t, err)
	r.Release()

	_, err = Reserve(context.Background(), nil, -1)
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

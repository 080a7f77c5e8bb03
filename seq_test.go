package seq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resource is the workhorse element type for tests: it owns a heap
// payload so deep cloning and drop accounting are observable.
type resource struct {
	id   int
	data []int
}

func res(id int) resource {
	return resource{id: id, data: []int{id}}
}

var errBoom = errors.New("boom")

// lifecycle counts hook invocations and can be told to fail the k-th
// call of a hook (1-based; 0 disables).
type lifecycle struct {
	news, clones, drops int
	failNewAt           int
	failCloneAt         int
	pinned              bool
}

func (lc *lifecycle) funcs() Funcs[resource] {
	return Funcs[resource]{
		New: func() (resource, error) {
			lc.news++
			if lc.failNewAt != 0 && lc.news == lc.failNewAt {
				return resource{}, errBoom
			}
			return resource{data: []int{0}}, nil
		},
		Clone: func(v resource) (resource, error) {
			lc.clones++
			if lc.failCloneAt != 0 && lc.clones == lc.failCloneAt {
				return resource{}, errBoom
			}
			d := make([]int, len(v.data))
			copy(d, v.data)
			return resource{id: v.id, data: d}, nil
		},
		Drop:          func(v *resource) { lc.drops++ },
		NoBitwiseMove: lc.pinned,
	}
}

// ids collects the element ids in order.
func ids(s *Sequence[resource]) []int {
	out := make([]int, 0, s.Len())
	for v := range s.Values() {
		out = append(out, v.id)
	}
	return out
}

func fill(t *testing.T, s *Sequence[resource], idList ...int) {
	t.Helper()
	for _, id := range idList {
		require.NoError(t, s.Append(res(id)))
	}
}

func TestNewEmpty(t *testing.T) {
	s := New[int](Funcs[int]{})
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())
}

func TestNewLen(t *testing.T) {
	var lc lifecycle
	s, err := NewLen(lc.funcs(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.Cap(), "sized construction allocates exactly n slots")
	assert.Equal(t, 4, lc.news)
	for i := 0; i < 4; i++ {
		assert.Equal(t, []int{0}, s.Get(i).data)
	}
}

func TestNewLenZero(t *testing.T) {
	s, err := NewLen(Funcs[int]{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())
}

func TestNewLenZeroValueDefault(t *testing.T) {
	// nil New hook means zero-value construction.
	s, err := NewLen(Funcs[int]{}, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, s.Get(i))
	}
}

func TestNewLenFailureUnwinds(t *testing.T) {
	lc := lifecycle{failNewAt: 3}
	s, err := NewLen(lc.funcs(), 5)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, s)
	assert.Equal(t, 3, lc.news, "construction stops at the failing element")
	assert.Equal(t, 2, lc.drops, "the two built elements are dropped")
}

func TestCloneDeepIndependence(t *testing.T) {
	var lc lifecycle
	s := New(lc.funcs())
	fill(t, s, 1, 2, 3)

	c, err := s.Clone()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(c))
	assert.Equal(t, 3, c.Cap(), "copy allocates exactly source length")

	// Mutating the copy never affects the source.
	c.At(0).id = 99
	c.At(0).data[0] = 99
	assert.Equal(t, 1, s.Get(0).id)
	assert.Equal(t, []int{1}, s.Get(0).data)
}

func TestCloneFailureUnwinds(t *testing.T) {
	lc := lifecycle{failCloneAt: 2}
	s := New(lc.funcs())
	fill(t, s, 1, 2, 3)

	c, err := s.Clone()
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, c)
	assert.Equal(t, 1, lc.drops, "the one cloned element is dropped")
	assert.Equal(t, []int{1, 2, 3}, ids(s), "source untouched")
}

func TestMove(t *testing.T) {
	var lc lifecycle
	s := New(lc.funcs())
	fill(t, s, 1, 2, 3)

	d := s.Move()
	assert.Equal(t, []int{1, 2, 3}, ids(d))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())
	assert.Zero(t, lc.clones, "move transfers ownership, no cloning")

	// Moved-from sequence stays valid for reuse.
	fill(t, s, 9)
	assert.Equal(t, []int{9}, ids(s))
	assert.Equal(t, []int{1, 2, 3}, ids(d))
}

func TestSwap(t *testing.T) {
	var lc lifecycle
	a := New(lc.funcs())
	b := New(lc.funcs())
	fill(t, a, 1, 2)
	fill(t, b, 3, 4, 5)

	a.Swap(b)
	assert.Equal(t, []int{3, 4, 5}, ids(a))
	assert.Equal(t, []int{1, 2}, ids(b))
}

func TestAssignCopyAndSwap(t *testing.T) {
	var lc lifecycle
	dst := New(lc.funcs())
	src := New(lc.funcs())
	fill(t, dst, 8, 9)
	fill(t, src, 1, 2, 3, 4)

	require.Greater(t, src.Len(), dst.Cap())
	require.NoError(t, dst.Assign(src))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(dst))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(src), "source untouched")

	// Deep copies: mutating dst leaves src alone.
	dst.At(0).data[0] = 77
	assert.Equal(t, []int{1}, src.Get(0).data)
}

func TestAssignCopyAndSwapStrongGuarantee(t *testing.T) {
	var lc lifecycle
	dst := New(lc.funcs())
	src := New(lc.funcs())
	fill(t, dst, 8, 9)
	fill(t, src, 1, 2, 3, 4)

	lc.failCloneAt = lc.clones + 3
	err := dst.Assign(src)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{8, 9}, ids(dst), "failed assignment leaves dst unchanged")
}

func TestAssignInPlaceShrinks(t *testing.T) {
	var lc lifecycle
	dst := New(lc.funcs())
	src := New(lc.funcs())
	fill(t, dst, 5, 6, 7, 8)
	fill(t, src, 1, 2)

	capBefore := dst.Cap()
	require.NoError(t, dst.Assign(src))
	assert.Equal(t, []int{1, 2}, ids(dst))
	assert.Equal(t, capBefore, dst.Cap(), "storage reused, no reallocation")
}

func TestAssignInPlaceGrowsWithinCapacity(t *testing.T) {
	var lc lifecycle
	dst := New(lc.funcs())
	src := New(lc.funcs())
	fill(t, dst, 5, 6)
	require.NoError(t, dst.Reserve(8))
	fill(t, src, 1, 2, 3, 4)

	capBefore := dst.Cap()
	require.NoError(t, dst.Assign(src))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(dst))
	assert.Equal(t, capBefore, dst.Cap())
}

func TestAssignInPlaceBasicGuarantee(t *testing.T) {
	var lc lifecycle
	dst := New(lc.funcs())
	src := New(lc.funcs())
	fill(t, dst, 5, 6)
	require.NoError(t, dst.Reserve(8))
	fill(t, src, 1, 2, 3, 4)

	// Fail while clone-constructing into the tail: the prefix already
	// assigned stays, the length is intermediate but valid.
	lc.failCloneAt = lc.clones + 3
	err := dst.Assign(src)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{1, 2}, ids(dst), "intermediate but valid state")
}

func TestAssignSelf(t *testing.T) {
	var lc lifecycle
	s := New(lc.funcs())
	fill(t, s, 1, 2, 3)
	clonesBefore := lc.clones

	require.NoError(t, s.Assign(s))
	assert.Equal(t, []int{1, 2, 3}, ids(s))
	assert.Equal(t, clonesBefore, lc.clones, "self-assignment is a no-op")
}

func TestReplace(t *testing.T) {
	var lc lifecycle
	a := New(lc.funcs())
	b := New(lc.funcs())
	fill(t, a, 1, 2)
	fill(t, b, 3, 4, 5)

	a.Replace(b)
	assert.Equal(t, []int{3, 4, 5}, ids(a))
	assert.Equal(t, []int{1, 2}, ids(b), "prior contents ride out in the source")
	assert.Zero(t, lc.clones)
}

func TestAtMutatesInPlace(t *testing.T) {
	s := New[int](Funcs[int]{})
	require.NoError(t, s.Append(10))
	require.NoError(t, s.Append(20))

	*s.At(1) = 25
	assert.Equal(t, 25, s.Get(1))
	assert.Equal(t, 10, s.Get(0))
}

func TestClearKeepsCapacity(t *testing.T) {
	var lc lifecycle
	s := New(lc.funcs())
	fill(t, s, 1, 2, 3)
	capBefore := s.Cap()

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, capBefore, s.Cap())
	assert.Equal(t, 3, lc.drops)

	fill(t, s, 4)
	assert.Equal(t, []int{4}, ids(s))
}

func TestReleaseReturnsToEmpty(t *testing.T) {
	var lc lifecycle
	s := New(lc.funcs())
	fill(t, s, 1, 2, 3)

	s.Release()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())
	assert.Equal(t, 3, lc.drops)

	// Released sequence is reusable.
	fill(t, s, 7)
	assert.Equal(t, []int{7}, ids(s))
}

// TestDropAccounting checks the lifecycle ledger: every element that
// was constructed, cloned, or adopted is dropped exactly once by the
// time the sequence is released.
func TestDropAccounting(t *testing.T) {
	t.Run("Movable", func(t *testing.T) {
		var lc lifecycle
		s := New(lc.funcs())
		fill(t, s, 1, 2, 3, 4, 5) // 5 adopted
		require.NoError(t, s.AppendClone(res(6)))
		s.Pop()
		require.NoError(t, s.Remove(0))
		require.NoError(t, s.Resize(10))
		s.Release()

		constructed := 5 + lc.clones + lc.news
		assert.Equal(t, constructed, lc.drops)
	})

	t.Run("Pinned", func(t *testing.T) {
		lc := lifecycle{pinned: true}
		s := New(lc.funcs())
		fill(t, s, 1, 2, 3, 4, 5, 6, 7, 8) // 8 adopted, clone relocations on growth
		require.NoError(t, s.Remove(3))
		s.Release()

		constructed := 8 + lc.clones + lc.news
		assert.Equal(t, constructed, lc.drops)
	})
}

package dynarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneFailure(t *testing.T) {
	l := &ledger{}
	a := trackedOf(l, 1, 2, 3, 4, 5)
	l.failClone = 3

	c, err := a.Clone()
	assert.ErrorIs(t, err, errCloneFailed)
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Cap())

	// The two copies that succeeded were destroyed, the source is untouched.
	assert.Equal(t, 2, l.releases)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(&a))
}

func TestAssignFailure(t *testing.T) {
	l := &ledger{}
	src := trackedOf(l, 1, 2, 3)
	dst := trackedOf(l, 7, 8)
	l.failClone = 2

	assert.ErrorIs(t, dst.Assign(&src), errCloneFailed)
	assert.Equal(t, []int{7, 8}, ids(&dst))
	assert.Equal(t, []int{1, 2, 3}, ids(&src))

	l.failClone = 0
	require.NoError(t, dst.Assign(&src))
	assert.Equal(t, []int{1, 2, 3}, ids(&dst))
	assert.Subset(t, l.releasedSlots, []int{7, 8})
}

func TestMakeFailure(t *testing.T) {
	l := &ledger{failClone: 4}

	a, err := Make(5, tracked{id: 1, l: l})
	assert.ErrorIs(t, err, errCloneFailed)
	assert.Zero(t, a.Len())
	assert.Zero(t, a.Cap())
	assert.Equal(t, 3, l.releases)
}

func TestInsertSliceFailure(t *testing.T) {
	for _, reserve := range []int{0, 16} {
		l := &ledger{}
		a := trackedOf(l, 1, 2, 3)
		require.NoError(t, a.Reserve(reserve))
		capBefore := a.Cap()

		src := []tracked{{id: 10, l: l}, {id: 11, l: l}, {id: 12, l: l}}
		l.failClone = 3

		_, err := a.InsertSlice(1, src)
		assert.ErrorIs(t, err, errCloneFailed)
		assert.Equal(t, []int{1, 2, 3}, ids(&a))
		assert.Equal(t, capBefore, a.Cap())
		assert.Equal(t, []int{10, 11}, l.releasedSlots)
	}
}

func TestResizeFailure(t *testing.T) {
	l := &ledger{}
	a := trackedOf(l, 1, 2)
	l.failClone = 3

	assert.ErrorIs(t, a.Resize(5, tracked{id: 9, l: l}), errCloneFailed)
	assert.Equal(t, []int{1, 2}, ids(&a))
	assert.Equal(t, 2, a.Cap())
	assert.Equal(t, 2, l.releases)

	l.failClone = 0
	require.NoError(t, a.Resize(4, tracked{id: 9, l: l}))
	assert.Equal(t, []int{1, 2, 9, 9}, ids(&a))
	assert.Equal(t, 4, a.Cap())
}

func TestReleaseAccounting(t *testing.T) {
	l := &ledger{}
	a := trackedOf(l, 1, 2, 3, 4, 5, 6)

	// Growth moves elements without destroying them.
	require.NoError(t, a.PushBack(tracked{id: 7, l: l}))
	require.NoError(t, a.Reserve(100))
	require.NoError(t, a.ShrinkToFit())
	_, err := a.Insert(0, tracked{id: 0, l: l})
	require.NoError(t, err)
	assert.Zero(t, l.releases)

	_, err = a.EraseRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, l.releasedSlots)

	a.PopBack()
	assert.Equal(t, []int{1, 2, 7}, l.releasedSlots)

	require.NoError(t, a.Resize(2))
	assert.Equal(t, []int{1, 2, 7, 4, 5, 6}, l.releasedSlots)
	assert.Equal(t, []int{0, 3}, ids(&a))

	a.Clear()
	assert.Equal(t, 8, l.releases)

	a.Clear()
	assert.Equal(t, 8, l.releases)
	assert.Equal(t, 0, a.Len())
}

func TestRelocation(t *testing.T) {
	l := &ledger{}
	a := pinnedOf(l, 1, 2, 3)
	require.True(t, pinnedIntact(&a))

	for i := 4; i <= 20; i++ {
		require.NoError(t, a.PushBack(pinned{val: i, l: l}))
	}
	assert.True(t, pinnedIntact(&a))

	_, err := a.Insert(1, pinned{val: 100, l: l})
	require.NoError(t, err)
	_, err = a.InsertSlice(0, []pinned{{val: 200, l: l}})
	require.NoError(t, err)
	assert.True(t, pinnedIntact(&a))
	assert.Equal(t, []int{200, 1, 100, 2, 3}, pinnedValues(&a)[:5])

	_, err = a.EraseRange(0, 3)
	require.NoError(t, err)
	assert.True(t, pinnedIntact(&a))
	assert.Equal(t, []int{2, 3, 4}, pinnedValues(&a)[:3])

	require.NoError(t, a.ShrinkToFit())
	assert.True(t, pinnedIntact(&a))
	assert.Equal(t, a.Len(), a.Cap())
}

func TestRelocationFailure(t *testing.T) {
	tests := []struct {
		name string
		op   func(a *Array[pinned], l *ledger) error
	}{
		{"grow", func(a *Array[pinned], l *ledger) error {
			return a.PushBack(pinned{val: 9, l: l})
		}},
		{"reserve", func(a *Array[pinned], _ *ledger) error {
			return a.Reserve(64)
		}},
		{"insert in place", func(a *Array[pinned], l *ledger) error {
			l.failRelocate = 0
			if err := a.Reserve(16); err != nil {
				return err
			}
			l.relocations, l.failRelocate = 0, 3
			_, err := a.Insert(1, pinned{val: 9, l: l})
			return err
		}},
		{"erase", func(a *Array[pinned], l *ledger) error {
			_, err := a.Erase(0)
			return err
		}},
		{"shrink", func(a *Array[pinned], l *ledger) error {
			l.failRelocate = 0
			if err := a.Reserve(16); err != nil {
				return err
			}
			l.relocations, l.failRelocate = 0, 4
			return a.ShrinkToFit()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ledger{}
			a := pinnedOf(l, 1, 2, 3, 4)
			l.relocations, l.failRelocate = 0, 3
			capBefore := a.Cap()

			err := tt.op(&a, l)
			assert.ErrorIs(t, err, errRelocateFailed)
			assert.Equal(t, []int{1, 2, 3, 4}, pinnedValues(&a))
			assert.True(t, pinnedIntact(&a))

			if tt.name != "insert in place" && tt.name != "shrink" {
				assert.Equal(t, capBefore, a.Cap())
			}
		})
	}
}

func TestRelocatedCopies(t *testing.T) {
	l := &ledger{}
	a := pinnedOf(l, 1, 2, 3)

	c, err := a.Clone()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, pinnedValues(&c))
	assert.True(t, pinnedIntact(&c))
	assert.True(t, pinnedIntact(&a))

	m, err := Make(4, pinned{val: 7, l: l})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7}, pinnedValues(&m))
	assert.True(t, pinnedIntact(&m))

	f, err := FromSlice(a.Slice())
	require.NoError(t, err)
	assert.True(t, pinnedIntact(&f))

	require.NoError(t, m.Assign(&a))
	assert.Equal(t, []int{1, 2, 3}, pinnedValues(&m))
	assert.True(t, pinnedIntact(&m))

	require.NoError(t, f.Resize(5, pinned{val: 9, l: l}))
	require.NoError(t, f.Reserve(8))
	require.NoError(t, f.Resize(7, pinned{val: 8, l: l}))
	assert.Equal(t, []int{1, 2, 3, 9, 9, 8, 8}, pinnedValues(&f))
	assert.True(t, pinnedIntact(&f))

	_, err = f.InsertSlice(1, a.Slice())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3, 2, 3}, pinnedValues(&f)[:6])
	assert.True(t, pinnedIntact(&f))
}

func TestResizeRelocationFailure(t *testing.T) {
	tests := []struct {
		name    string
		reserve int
		fail    int
	}{
		{"copy", 0, 2},
		{"grow", 0, 5},
		{"in place", 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ledger{}
			a := pinnedOf(l, 1, 2)
			require.NoError(t, a.Reserve(tt.reserve))
			capBefore := a.Cap()

			l.relocations, l.failRelocate = 0, tt.fail
			assert.ErrorIs(t, a.Resize(5, pinned{val: 9, l: l}), errRelocateFailed)
			assert.Equal(t, []int{1, 2}, pinnedValues(&a))
			assert.Equal(t, capBefore, a.Cap())
			assert.True(t, pinnedIntact(&a))
		})
	}
}

func TestEmptyValueArgument(t *testing.T) {
	a, err := Make(3, []int{}...)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, a.Slice())

	require.NoError(t, a.Resize(5, []int{}...))
	assert.Equal(t, []int{0, 0, 0, 0, 0}, a.Slice())
}

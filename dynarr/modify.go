package dynarr

import (
	"github.com/pkg/errors"
	"github.com/webbmaffian/go-arr/internal/utils"
)

// Reserve makes room for at least n elements. It does nothing when the
// capacity is already n or more, and otherwise reallocates to exactly n.
func (a *Array[T]) Reserve(n int) error {
	if n <= len(a.data) {
		return nil
	}

	return a.splice(n, a.length, 0, nil)
}

// ShrinkToFit reduces the capacity to the length, releasing the block
// entirely when the array is empty.
func (a *Array[T]) ShrinkToFit() error {
	if len(a.data) == a.length {
		return nil
	}

	if a.length == 0 {
		a.data = nil
		return nil
	}

	return a.splice(a.length, a.length, 0, nil)
}

// PushBack appends val, growing the block first when it is full. val may be
// a copy of an element of the same array.
func (a *Array[T]) PushBack(val T) (err error) {
	if a.length == len(a.data) {
		if err = a.splice(a.grow(a.length+1), a.length, 0, nil); err != nil {
			return
		}
	}

	if err = utils.Relocate(&a.data[a.length], &val); err != nil {
		var zero T
		a.data[a.length] = zero
		return
	}

	a.length++
	return
}

// PopBack destroys the last element. It does nothing on an empty array.
func (a *Array[T]) PopBack() {
	if a.length == 0 {
		return
	}

	a.length--
	utils.Destroy(&a.data[a.length])
}

// EmplaceBack appends a zero value, applies init to it in place and returns
// a pointer to the new element.
func (a *Array[T]) EmplaceBack(init ...func(*T)) (ptr *T, err error) {
	if a.length == len(a.data) {
		if err = a.splice(a.grow(a.length+1), a.length, 0, nil); err != nil {
			return
		}
	}

	ptr = &a.data[a.length]

	for _, fn := range init {
		fn(ptr)
	}

	a.length++
	return
}

// Insert moves val into position pos, shifting the elements at and after
// pos one slot later. pos must be within [0, Len()]; Len() appends. It
// returns the position of the inserted element.
func (a *Array[T]) Insert(pos int, val T) (int, error) {
	if pos < 0 || pos > a.length {
		return pos, errors.Wrapf(ErrOutOfRange, "dynarr: insert at %d with length %d", pos, a.length)
	}

	return pos, a.insertOwned(pos, []T{val})
}

// InsertSlice inserts copies of values at pos, shifting the elements at and
// after pos by len(values). An empty values is a no-op. On failure the array
// is unchanged.
func (a *Array[T]) InsertSlice(pos int, values []T) (int, error) {
	if pos < 0 || pos > a.length {
		return pos, errors.Wrapf(ErrOutOfRange, "dynarr: insert at %d with length %d", pos, a.length)
	}

	if len(values) == 0 {
		return pos, nil
	}

	// Copy first: values may alias this array.
	copies := make([]T, len(values))

	for i := range values {
		if err := utils.Copy(&copies[i], &values[i]); err != nil {
			destroyAll(copies[:i])
			return pos, err
		}
	}

	if err := a.insertOwned(pos, copies); err != nil {
		destroyAll(copies)
		return pos, err
	}

	return pos, nil
}

// Erase removes the element at pos and returns the position of the element
// that followed it.
func (a *Array[T]) Erase(pos int) (int, error) {
	return a.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last), shifting the rest left.
// It returns first, which then indexes the element that followed the
// erased range (or Len()).
func (a *Array[T]) EraseRange(first, last int) (int, error) {
	if first < 0 || first > last || last > a.length {
		return first, errors.Wrapf(ErrOutOfRange, "dynarr: erase [%d, %d) with length %d", first, last, a.length)
	}

	count := last - first

	if count == 0 {
		return first, nil
	}

	if !utils.Movable[T]() {
		return first, a.splice(len(a.data), first, count, nil)
	}

	for i := first; i < last; i++ {
		utils.Destroy(&a.data[i])
	}

	copy(a.data[first:], a.data[last:a.length])
	clear(a.data[a.length-count : a.length])
	a.length -= count
	return first, nil
}

// Resize changes the length to count. Growing appends copies of value (zero
// values when omitted), reallocating to exactly count slots when the
// capacity is too small. Shrinking destroys the trailing elements. If a copy
// fails the array is unchanged, capacity included.
func (a *Array[T]) Resize(count int, value ...T) (err error) {
	if count < 0 {
		return errors.Wrapf(ErrOutOfRange, "dynarr: resize to %d", count)
	}

	if count <= a.length {
		for i := count; i < a.length; i++ {
			utils.Destroy(&a.data[i])
		}

		a.length = count
		return
	}

	if len(value) == 0 {
		if err = a.Reserve(count); err == nil {
			a.length = count
		}

		return
	}

	copies := make([]T, count-a.length)

	for i := range copies {
		if err = utils.Copy(&copies[i], &value[0]); err != nil {
			destroyAll(copies[:i])
			return
		}
	}

	if count > len(a.data) {
		err = a.splice(count, a.length, 0, copies)
	} else {
		err = a.insertOwned(a.length, copies)
	}

	if err != nil {
		destroyAll(copies)
	}

	return
}

// Clear destroys every element. The capacity is kept.
func (a *Array[T]) Clear() {
	for i := 0; i < a.length; i++ {
		utils.Destroy(&a.data[i])
	}

	a.length = 0
}

func destroyAll[T any](vals []T) {
	for i := range vals {
		utils.Destroy(&vals[i])
	}
}

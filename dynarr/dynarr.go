package dynarr

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"github.com/webbmaffian/go-arr/internal/utils"
)

// Array is a growable array. The zero value is an empty array with no
// storage.
type Array[T any] struct {
	data   []T // len(data) is the capacity
	length int
}

// Make returns an array of count copies of value, or of count zero values
// when value is omitted. Capacity equals count.
func Make[T any](count int, value ...T) (arr Array[T], err error) {
	if count < 0 {
		return arr, errors.Wrapf(ErrOutOfRange, "dynarr: make %d elements", count)
	}

	if arr.data, err = alloc[T](count); err != nil {
		return
	}

	if len(value) == 0 {
		arr.length = count
		return
	}

	for ; arr.length < count; arr.length++ {
		if err = utils.Copy(&arr.data[arr.length], &value[0]); err != nil {
			arr.Release()
			return
		}
	}

	return
}

// FromSlice returns an array holding copies of values. Capacity equals
// len(values). If a copy fails, the copies made so far are destroyed and
// the error is returned.
func FromSlice[T any](values []T) (arr Array[T], err error) {
	if arr.data, err = alloc[T](len(values)); err != nil {
		return
	}

	for ; arr.length < len(values); arr.length++ {
		if err = utils.Copy(&arr.data[arr.length], &values[arr.length]); err != nil {
			arr.Release()
			return
		}
	}

	return
}

// Of returns an array holding values, moved in order. Capacity equals
// len(values). Of panics if a Relocator element fails to relocate.
func Of[T any](values ...T) (arr Array[T]) {
	if len(values) == 0 {
		return
	}

	arr.data = make([]T, len(values))
	arr.length = len(values)

	for i := range values {
		if err := utils.Relocate(&arr.data[i], &values[i]); err != nil {
			panic(err)
		}
	}

	return
}

// Collect returns an array of the values yielded by seq. Like Of, it panics
// if a Relocator element fails to relocate.
func Collect[T any](seq iter.Seq[T]) (arr Array[T]) {
	for v := range seq {
		if err := arr.PushBack(v); err != nil {
			panic(err)
		}
	}

	return
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.data)
}

func (a *Array[T]) IsEmpty() bool {
	return a.length == 0
}

// Get returns the element at i without checking i against Len.
func (a *Array[T]) Get(i int) T {
	return a.data[:a.length][i]
}

// Set overwrites the element at i without checking i against Len.
func (a *Array[T]) Set(i int, val T) {
	a.data[:a.length][i] = val
}

// Ref returns a pointer to the element at i. It is invalidated by any
// operation that reallocates.
func (a *Array[T]) Ref(i int) *T {
	return &a.data[:a.length][i]
}

// At returns the element at i, or ErrOutOfRange.
func (a *Array[T]) At(i int) (val T, err error) {
	if err = a.check(i); err == nil {
		val = a.data[i]
	}

	return
}

// SetAt overwrites the element at i, or returns ErrOutOfRange.
func (a *Array[T]) SetAt(i int, val T) (err error) {
	if err = a.check(i); err == nil {
		a.data[i] = val
	}

	return
}

func (a *Array[T]) Front() T {
	return a.data[:a.length][0]
}

func (a *Array[T]) Back() T {
	return a.data[:a.length][a.length-1]
}

// Slice returns the live elements. The slice shares the array's storage and
// is invalidated by any operation that reallocates.
func (a *Array[T]) Slice() []T {
	return a.data[:a.length:a.length]
}

// All iterates over index/value pairs in index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Backward iterates over index/value pairs in reverse index order.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.length - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.Slice())
}

func (a *Array[T]) check(i int) error {
	if i < 0 || i >= a.length {
		return errors.Wrapf(ErrOutOfRange, "dynarr: index %d with length %d", i, a.length)
	}

	return nil
}

// Package fixarr implements an array whose length is part of its type.
//
// Go has no integer type parameters, so the length is carried by a size
// type: any type whose Size method returns a constant.
//
//	type three struct{}
//
//	func (three) Size() int { return 3 }
//
//	arr := fixarr.Of[int, three](1, 2, 3)
//
// Arrays of different sizes are different types and cannot be compared,
// swapped or assigned to each other. The storage is allocated once and never
// resized. The zero value is an array of N zero values.
//
// # Ownership
//
// An Array owns its storage once an element has been touched. Copying the
// struct after that aliases the storage, so b := a followed by b.Set(0, x)
// also changes a. Use Clone or Assign for independent copies.
package fixarr

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"github.com/webbmaffian/go-arr/internal/utils"
)

const ErrOutOfRange = utils.ErrOutOfRange

// Size is implemented by the types that fix an array's length.
type Size interface {
	Size() int
}

// Cloner is implemented by element types that must be deep-copied by Clone,
// Assign and Fill.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Releaser is implemented by element types that free resources when the
// array releases its elements.
type Releaser interface {
	Release()
}

// Relocator is implemented by element types that must not be moved by plain
// assignment. Copies made by Clone, Assign and Fill are written in place
// through Relocate.
type Relocator[T any] interface {
	Relocate(dst *T) error
}

func sizeOf[N Size]() int {
	var n N
	return n.Size()
}

// Array holds exactly N values of T.
type Array[T any, N Size] struct {
	data []T
}

// New returns an array of N zero values.
func New[T any, N Size]() (arr Array[T, N]) {
	arr.slots()
	return
}

// Of returns an array holding the first N values, moved in order. Missing
// values are left zero; extra values are ignored.
func Of[T any, N Size](values ...T) (arr Array[T, N]) {
	copy(arr.slots(), values)
	return
}

// Collect returns an array of the first N values yielded by seq.
func Collect[T any, N Size](seq iter.Seq[T]) (arr Array[T, N]) {
	data := arr.slots()

	if len(data) == 0 {
		return
	}

	i := 0

	for v := range seq {
		data[i] = v

		if i++; i == len(data) {
			break
		}
	}

	return
}

func (a *Array[T, N]) slots() []T {
	if a.data == nil {
		n := sizeOf[N]()

		if n < 0 {
			panic(fmt.Sprintf("fixarr: negative size %d", n))
		}

		if n > 0 {
			a.data = make([]T, n)
		}
	}

	return a.data
}

// Len returns N.
func (a *Array[T, N]) Len() int {
	return sizeOf[N]()
}

// Cap returns N.
func (a *Array[T, N]) Cap() int {
	return sizeOf[N]()
}

func (a *Array[T, N]) IsEmpty() bool {
	return sizeOf[N]() == 0
}

// Get returns the element at i. i is not checked beyond Go's own bounds
// checks.
func (a *Array[T, N]) Get(i int) T {
	return a.slots()[i]
}

func (a *Array[T, N]) Set(i int, val T) {
	a.slots()[i] = val
}

// Ref returns a pointer to the element at i. It stays valid until the array
// is released, or for Relocator elements until Fill, Assign or Swap.
func (a *Array[T, N]) Ref(i int) *T {
	return &a.slots()[i]
}

// At returns the element at i, or ErrOutOfRange when i is not in [0, N).
func (a *Array[T, N]) At(i int) (val T, err error) {
	if err = a.check(i); err == nil {
		val = a.slots()[i]
	}

	return
}

// SetAt overwrites the element at i, or returns ErrOutOfRange.
func (a *Array[T, N]) SetAt(i int, val T) (err error) {
	if err = a.check(i); err == nil {
		a.slots()[i] = val
	}

	return
}

func (a *Array[T, N]) Front() T {
	return a.slots()[0]
}

func (a *Array[T, N]) Back() T {
	data := a.slots()
	return data[len(data)-1]
}

// Slice returns the N elements, sharing the array's storage.
func (a *Array[T, N]) Slice() []T {
	return a.slots()
}

// All iterates over index/value pairs in index order.
func (a *Array[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.slots() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over the elements in index order.
func (a *Array[T, N]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.slots() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates over index/value pairs in reverse index order.
func (a *Array[T, N]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := a.slots()

		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

func (a *Array[T, N]) String() string {
	return fmt.Sprint(a.slots())
}

func (a *Array[T, N]) check(i int) error {
	if n := sizeOf[N](); i < 0 || i >= n {
		return errors.Wrapf(ErrOutOfRange, "fixarr: index %d with size %d", i, n)
	}

	return nil
}

package utils

import "reflect"

// Cloner is implemented by element types whose copies must not share state
// with their source. Clone may fail.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Releaser is implemented by element types that own resources which must be
// freed when a live element is destroyed.
type Releaser interface {
	Release()
}

// Relocator is implemented by element types that cannot be moved by plain
// assignment. Relocate writes the receiver's value into dst and must leave
// the receiver intact.
type Relocator[T any] interface {
	Relocate(dst *T) error
}

// Copy writes an independent copy of *src into *dst. Cloner types are
// copied through Clone, Relocator types through Relocate, the rest by
// assignment. On failure *dst is zero.
func Copy[T any](dst, src *T) (err error) {
	c, ok := any(src).(Cloner[T])

	if !ok {
		c, ok = any(*src).(Cloner[T])
	}

	if !ok {
		return Relocate(dst, src)
	}

	tmp, err := c.Clone()

	if err != nil {
		return
	}

	if err = Relocate(dst, &tmp); err != nil {
		Destroy(&tmp)
	}

	return
}

// Destroy releases the element in slot and zeroes it.
func Destroy[T any](slot *T) {
	if r, ok := any(slot).(Releaser); ok {
		r.Release()
	} else if r, ok := any(*slot).(Releaser); ok && !isNilPointer(r) {
		r.Release()
	}

	var zero T
	*slot = zero
}

// Relocate moves *src into *dst. It only fails for Relocator types, and
// then leaves *dst zero.
func Relocate[T any](dst, src *T) (err error) {
	if r, ok := any(src).(Relocator[T]); ok {
		if err = r.Relocate(dst); err != nil {
			var zero T
			*dst = zero
		}

		return
	}

	*dst = *src
	return
}

// Movable reports whether values of T can be relocated by assignment.
func Movable[T any]() bool {
	var v T
	_, ok := any(&v).(Relocator[T])
	return !ok
}

// Clones reports whether copying a T goes through Clone.
func Clones[T any]() bool {
	var v T

	if _, ok := any(&v).(Cloner[T]); ok {
		return true
	}

	_, ok := any(v).(Cloner[T])
	return ok
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

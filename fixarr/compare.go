package fixarr

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold pairwise equal elements.
func Equal[T comparable, N Size](a, b *Array[T, N]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

func EqualFunc[T any, N Size](a, b *Array[T, N], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically. The result is -1, 0 or +1.
func Compare[T cmp.Ordered, N Size](a, b *Array[T, N]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

func CompareFunc[T any, N Size](a, b *Array[T, N], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

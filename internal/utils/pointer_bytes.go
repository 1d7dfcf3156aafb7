package utils

import (
	"unsafe"
)

// PointerToBytes views the length bytes starting at val.
func PointerToBytes[T any](val *T, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(val)), length)
}

// BytesToPointer reinterprets the start of b as a *T.
func BytesToPointer[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// BytesToSlice reinterprets b as n consecutive values of T.
func BytesToSlice[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

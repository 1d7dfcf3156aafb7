// Package dynarr implements a growable array that owns a single contiguous
// block of elements.
//
// An Array tracks two numbers: its length (live elements) and its capacity
// (allocated slots). Appending to a full array reallocates the block to
// twice its capacity, so a sequence of appends costs amortised O(1) per
// element. Reserve and ShrinkToFit control the capacity explicitly.
//
//	var v dynarr.Array[int]
//	_ = v.Reserve(5)
//	_ = v.PushBack(1)
//	_, _ = v.Insert(0, 314)
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Ownership
//
// An Array exclusively owns its block. Copying the struct would alias the
// block, so use Clone or Assign for copies and Move to hand ownership over.
// Values passed to PushBack, Insert and Of are moved into the array; values
// read by Make, Resize, InsertSlice and Clone are copied, through Clone when
// the element type implements Cloner.
//
// # Failure
//
// Operations that can partially apply (reallocation, clone, slice insert,
// resize) either succeed completely or leave the array as it was. Positions
// outside the array are reported as ErrOutOfRange. Get, Set, Ref, Front and
// Back are unchecked and panic on misuse.
//
// An Array is not safe for concurrent use.
package dynarr

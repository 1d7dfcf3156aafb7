package dynarr

// Clone returns a deep copy of the array with capacity equal to its length.
// If copying an element fails, the copies made so far are destroyed and an
// empty array is returned with the error.
func (a *Array[T]) Clone() (Array[T], error) {
	return FromSlice(a.Slice())
}

// Assign replaces the contents of a with a deep copy of src. On failure a is
// unchanged.
func (a *Array[T]) Assign(src *Array[T]) error {
	if a == src {
		return nil
	}

	c, err := src.Clone()

	if err != nil {
		return err
	}

	a.Release()
	*a = c
	return nil
}

// Move transfers the block to the returned array and leaves a empty.
func (a *Array[T]) Move() (m Array[T]) {
	m, *a = *a, Array[T]{}
	return
}

// Swap exchanges the contents of a and other in constant time.
func (a *Array[T]) Swap(other *Array[T]) {
	*a, *other = *other, *a
}

// Release destroys every element and drops the block. The array is empty
// afterwards and may be reused.
func (a *Array[T]) Release() {
	if a == nil {
		return
	}

	a.Clear()
	a.data = nil
}

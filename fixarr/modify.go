package fixarr

import "github.com/webbmaffian/go-arr/internal/utils"

// Fill sets every element to a copy of val. If a copy fails the array is
// unchanged.
func (a *Array[T, N]) Fill(val T) error {
	data := a.slots()

	if !utils.Clones[T]() && utils.Movable[T]() {
		for i := range data {
			utils.Destroy(&data[i])
			data[i] = val
		}

		return nil
	}

	fresh, err := copyN(len(data), func(int) *T { return &val })

	if err != nil {
		return err
	}

	a.commit(fresh)
	return nil
}

// Swap exchanges the contents of a and other. Elements that implement
// Relocator are not moved; the two arrays exchange storage instead.
func (a *Array[T, N]) Swap(other *Array[T, N]) {
	x, y := a.slots(), other.slots()

	if !utils.Movable[T]() {
		a.data, other.data = y, x
		return
	}

	for i := range x {
		x[i], y[i] = y[i], x[i]
	}
}

// Clone returns a deep copy of the array. If copying an element fails, the
// copies made so far are destroyed and the error is returned.
func (a *Array[T, N]) Clone() (c Array[T, N], err error) {
	src := a.slots()
	c.data, err = copyN(len(src), func(i int) *T { return &src[i] })
	return
}

// Assign replaces the contents of a with a deep copy of src. On failure a is
// unchanged.
func (a *Array[T, N]) Assign(src *Array[T, N]) error {
	if a == src {
		return nil
	}

	c, err := src.Clone()

	if err != nil {
		return err
	}

	a.commit(c.data)
	return nil
}

// Release destroys every element. The array reads as N zero values
// afterwards.
func (a *Array[T, N]) Release() {
	if a == nil {
		return
	}

	for i := range a.data {
		utils.Destroy(&a.data[i])
	}

	a.data = nil
}

// commit destroys the current elements and moves fresh into their slots.
// For Relocator elements fresh becomes the storage.
func (a *Array[T, N]) commit(fresh []T) {
	data := a.slots()

	for i := range data {
		utils.Destroy(&data[i])

		if utils.Movable[T]() {
			data[i] = fresh[i]
		}
	}

	if !utils.Movable[T]() {
		a.data = fresh
	}
}

func copyN[T any](n int, src func(int) *T) (data []T, err error) {
	if n == 0 {
		return
	}

	data = make([]T, n)

	for i := range data {
		if err = utils.Copy(&data[i], src(i)); err != nil {
			for j := 0; j < i; j++ {
				utils.Destroy(&data[j])
			}

			return nil, err
		}
	}

	return
}

package dynarr

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/webbmaffian/go-arr/internal/utils"
)

// Upper bound of a single block, in bytes.
const maxBytes = min(math.MaxInt, 1<<47)

func maxSlots[T any]() int {
	var item T
	itemSize := int(unsafe.Sizeof(item))

	if itemSize == 0 {
		return math.MaxInt
	}

	return maxBytes / itemSize
}

// alloc returns a block of n zeroed slots. A zero-sized request yields nil.
func alloc[T any](n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}

	if n < 0 || n > maxSlots[T]() {
		return nil, errors.Wrapf(ErrTooLarge, "dynarr: allocate %d slots", n)
	}

	return make([]T, n), nil
}

// grow returns the capacity to allocate when at least required slots are
// needed: double the current capacity (1 when empty), or required if that
// is larger.
func (a *Array[T]) grow(required int) int {
	capacity := len(a.data)

	if capacity == 0 {
		capacity = 1
	} else if capacity <= maxSlots[T]()/2 {
		capacity *= 2
	} else {
		capacity = maxSlots[T]()
	}

	return max(capacity, required)
}

// relocate moves src into dst. On failure every slot already written in dst
// is zeroed and the sources are untouched.
func relocate[T any](dst, src []T) error {
	if utils.Movable[T]() {
		copy(dst, src)
		return nil
	}

	for i := range src {
		if err := utils.Relocate(&dst[i], &src[i]); err != nil {
			clear(dst[:i])
			return err
		}
	}

	return nil
}

// splice replaces the block with a new one of the given capacity holding
// the elements before pos, then ins, then the elements after pos+skip. The
// skipped elements are destroyed. Nothing changes unless every relocation
// succeeds.
func (a *Array[T]) splice(capacity, pos, skip int, ins []T) (err error) {
	data, err := alloc[T](capacity)

	if err != nil {
		return
	}

	tail := a.length - pos - skip
	mid := pos + len(ins)

	if err = relocate(data[:pos], a.data[:pos]); err != nil {
		return
	}

	if err = relocate(data[pos:mid], ins); err != nil {
		return
	}

	if err = relocate(data[mid:mid+tail], a.data[pos+skip:a.length]); err != nil {
		return
	}

	for i := pos; i < pos+skip; i++ {
		utils.Destroy(&a.data[i])
	}

	a.data = data
	a.length = mid + tail
	return
}

// insertOwned places vals at pos, taking ownership of them.
func (a *Array[T]) insertOwned(pos int, vals []T) error {
	n := len(vals)

	if required := a.length + n; required > len(a.data) {
		return a.splice(a.grow(required), pos, 0, vals)
	}

	// Shifting in place is only safe for plain values.
	if pos < a.length && !utils.Movable[T]() {
		return a.splice(len(a.data), pos, 0, vals)
	}

	copy(a.data[pos+n:a.length+n], a.data[pos:a.length])

	if err := relocate(a.data[pos:pos+n], vals); err != nil {
		return err
	}

	a.length += n
	return nil
}

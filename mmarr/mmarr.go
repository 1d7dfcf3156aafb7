// Package mmarr implements an array of plain values stored in a
// memory-mapped file.
package mmarr

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"github.com/webbmaffian/go-arr/internal/utils"
)

// Initialize a new memory-mapped array with a filepath, length and capacity.
// If file doesn't exist, capacity is mandatory. If left out, capacity will
// equal to the length. If a capacity is provided and the file already exists,
// it must match the capacity in the file.
// The provided types (`T` and `H`) MUST NOT contain any pointer nor slice.
func New[T any](filepath string, lenCap ...int) (arr *Array[T, struct{}], err error) {
	return NewWithHeader[T, struct{}](filepath, lenCap...)
}

func NewWithHeader[T any, H any](filepath string, lenCap ...int) (arr *Array[T, H], err error) {
	want := newHeader[T, H](lenCap...)

	if err = validateTypes[T, H](want); err != nil {
		return nil, err
	}

	arr = new(Array[T, H])

	defer func() {
		if err != nil {
			arr.close()
			arr = nil
		}
	}()

	info, err := os.Stat(filepath)

	switch {
	case err == nil:
		if arr.file, err = os.OpenFile(filepath, os.O_RDWR, 0); err != nil {
			return
		}

		if err = arr.mapFile(mmap.RDWR, want, info.Size()); err != nil {
			return
		}

		if len(lenCap) > 1 && arr.head.capacity != want.capacity {
			return arr, errors.Errorf("mmarr: capacity %d does not match %d in %s", want.capacity, arr.head.capacity, filepath)
		}

	case os.IsNotExist(err):
		if lenCap == nil {
			return nil, errors.New("mmarr: capacity is mandatory")
		}

		if arr.file, err = os.Create(filepath); err != nil {
			return
		}

		if err = arr.file.Truncate(int64(want.fileSize())); err != nil {
			return arr, errors.Wrapf(err, "mmarr: truncate %s", filepath)
		}

		if arr.data, err = mmap.Map(arr.file, mmap.RDWR, 0); err != nil {
			return arr, errors.Wrapf(err, "mmarr: map %s", filepath)
		}

		copy(arr.data[:want.headSize], utils.PointerToBytes(want, want.headSize))
		arr.head = utils.BytesToPointer[header[H]](arr.data)

		if err = arr.Flush(); err != nil {
			return
		}

	default:
		return
	}

	return
}

func OpenRO[T any](filepath string) (arr *Array[T, struct{}], err error) {
	return OpenROWithHeader[T, struct{}](filepath)
}

// OpenROWithHeader maps an existing file read-only. Writes through the
// returned array fail with ErrReadOnly; the pointers returned by Get and
// Head must not be written to.
func OpenROWithHeader[T any, H any](filepath string) (arr *Array[T, H], err error) {
	want := newHeader[T, H]()

	if err = validateTypes[T, H](want); err != nil {
		return nil, err
	}

	info, err := os.Stat(filepath)

	if err != nil {
		return
	}

	arr = &Array[T, H]{readonly: true}

	if arr.file, err = os.OpenFile(filepath, os.O_RDONLY, 0); err != nil {
		return nil, err
	}

	if err = arr.mapFile(mmap.RDONLY, want, info.Size()); err != nil {
		arr.close()
		return nil, err
	}

	return
}

// Memory-mapped array
type Array[T any, H any] struct {
	data     mmap.MMap
	file     *os.File
	head     *header[H]
	readonly bool
}

func validateTypes[T any, H any](h *header[H]) error {
	if h.itemSize <= 0 {
		return errors.New("mmarr: item must be at least 1 byte")
	}

	if !utils.PointerFree[T]() || !utils.PointerFree[H]() {
		return ErrPointers
	}

	return nil
}

// mapFile maps the opened file and validates its header against want.
func (arr *Array[T, H]) mapFile(prot int, want *header[H], fileSize int64) (err error) {
	name := arr.file.Name()

	if fileSize < int64(want.headSize) {
		return errors.Errorf("mmarr: %s is too small", name)
	}

	if arr.data, err = mmap.Map(arr.file, prot, 0); err != nil {
		return errors.Wrapf(err, "mmarr: map %s", name)
	}

	head := utils.BytesToPointer[header[H]](arr.data)

	if !head.matches(want) {
		return errors.Errorf("mmarr: invalid item size in %s", name)
	}

	// A capacity can never be less than the length
	if head.capacity < head.length || head.length < 0 {
		return errors.Errorf("mmarr: invalid capacity in %s", name)
	}

	if fileSize != int64(head.fileSize()) {
		return errors.Errorf("mmarr: invalid file size of %s", name)
	}

	arr.head = head
	return
}

func (arr *Array[T, H]) Flush() error {
	if arr.readonly {
		return nil
	}

	return errors.Wrap(arr.data.Flush(), "mmarr: flush")
}

// Close flushes, unmaps and closes the file. The array and every pointer
// obtained from it must not be used afterwards.
func (arr *Array[T, H]) Close() (err error) {
	if err = arr.Flush(); err != nil {
		return
	}

	return arr.close()
}

func (arr *Array[T, H]) close() (err error) {
	arr.head = nil

	if arr.data != nil {
		err = arr.data.Unmap()
		arr.data = nil
	}

	if arr.file != nil {
		if cerr := arr.file.Close(); err == nil {
			err = cerr
		}

		arr.file = nil
	}

	return
}

// Append writes val after the last item and returns its position, or
// ErrFull when the capacity is reached.
func (arr *Array[T, H]) Append(val T) (pos int, err error) {
	if arr.readonly {
		return -1, ErrReadOnly
	}

	if arr.head.length >= arr.head.capacity {
		return -1, errors.Wrapf(ErrFull, "mmarr: append with capacity %d", arr.head.capacity)
	}

	pos = arr.head.length
	arr.write(pos, &val)
	arr.head.length++
	return
}

func (arr *Array[T, H]) Set(pos int, val T) (err error) {
	if arr.readonly {
		return ErrReadOnly
	}

	if err = arr.check(pos); err != nil {
		return
	}

	arr.write(pos, &val)
	return
}

// Get returns a pointer into the mapping for the item at pos.
func (arr *Array[T, H]) Get(pos int) (*T, error) {
	if err := arr.check(pos); err != nil {
		return nil, err
	}

	idx := arr.posToIdx(pos)
	return utils.BytesToPointer[T](arr.data[idx : idx+arr.head.itemSize]), nil
}

func (arr *Array[T, H]) Cap() int {
	return arr.head.capacity
}

func (arr *Array[T, H]) Len() int {
	return arr.head.length
}

func (arr *Array[T, H]) ItemSize() int {
	return arr.head.itemSize
}

// Items returns the stored items as a slice backed by the mapping.
func (arr *Array[T, H]) Items() []T {
	return utils.BytesToSlice[T](arr.data[arr.head.headSize:], arr.head.length)
}

func (arr *Array[T, H]) Head() *H {
	return &arr.head.custom
}

func (arr *Array[T, H]) write(pos int, val *T) {
	idx := arr.posToIdx(pos)
	copy(arr.data[idx:idx+arr.head.itemSize], utils.PointerToBytes(val, arr.head.itemSize))
}

func (arr *Array[T, H]) check(pos int) error {
	if pos < 0 || pos >= arr.head.length {
		return errors.Wrapf(ErrOutOfRange, "mmarr: position %d with length %d", pos, arr.head.length)
	}

	return nil
}

func (arr *Array[T, H]) posToIdx(pos int) int {
	return arr.head.headSize + pos*arr.head.itemSize
}

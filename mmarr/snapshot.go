package mmarr

import (
	"os"

	"github.com/pkg/errors"
	"github.com/webbmaffian/go-arr/dynarr"
)

// Save writes items to a new file at path, replacing any existing one. The
// file's capacity is len(items), or 1 when items is empty.
func Save[T any](path string, items []T) (err error) {
	if err = os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "mmarr: replace %s", path)
	}

	arr, err := New[T](path, len(items), len(items))

	if err != nil {
		return
	}

	copy(arr.Items(), items)

	if err = arr.Close(); err != nil {
		return errors.Wrapf(err, "mmarr: save %s", path)
	}

	return
}

// Load reads every item stored at path into a new dynamic array.
func Load[T any](path string) (items dynarr.Array[T], err error) {
	arr, err := OpenRO[T](path)

	if err != nil {
		return
	}

	defer arr.Close()

	if items, err = dynarr.FromSlice(arr.Items()); err != nil {
		return items, errors.Wrapf(err, "mmarr: load %s", path)
	}

	return
}

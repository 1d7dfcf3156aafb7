package dynarr

import "github.com/webbmaffian/go-arr/internal/utils"

const (
	// ErrOutOfRange is returned by checked access, insert and erase when
	// the position lies outside the array. The array is left unmodified.
	ErrOutOfRange = utils.ErrOutOfRange

	// ErrTooLarge is returned when a requested capacity cannot be
	// allocated.
	ErrTooLarge = utils.ErrTooLarge
)

// Cloner is implemented by element types that must be deep-copied. Every
// operation that copies an element (Make with a value, Resize with a value,
// InsertSlice, Clone, Assign) goes through it.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Releaser is implemented by element types that free resources when a live
// element is destroyed.
type Releaser interface {
	Release()
}

// Relocator is implemented by element types that must not be moved by
// plain assignment. Relocate writes the receiver into dst and leaves the
// receiver untouched; the source is discarded once the whole reallocation
// has succeeded.
type Relocator[T any] interface {
	Relocate(dst *T) error
}

package utils

// Error is a constant error. Values of the same text compare equal, which
// lets every package re-export the same sentinels.
type Error string

var _ error = Error("")

func (err Error) Error() string {
	return string(err)
}

const (
	ErrOutOfRange = Error("index out of range")
	ErrTooLarge   = Error("capacity exceeds addressable memory")
	ErrFull       = Error("array is full")
	ErrReadOnly   = Error("array is read-only")
	ErrPointers   = Error("item must not contain pointers")
)

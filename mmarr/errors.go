package mmarr

import "github.com/webbmaffian/go-arr/internal/utils"

const (
	ErrOutOfRange = utils.ErrOutOfRange
	ErrFull       = utils.ErrFull
	ErrReadOnly   = utils.ErrReadOnly
	ErrPointers   = utils.ErrPointers
)

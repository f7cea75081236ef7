package osk

import "errors"

var (
	ErrRaggedGrid                 = errors.New("grid rows have different lengths")
	ErrEmptyLabel                 = errors.New("literal key label is empty")
	ErrReservedLabel              = errors.New("literal key label is a reserved placeholder token")
	ErrCellOutOfRange             = errors.New("cell index out of range")
	ErrUnknownLayout              = errors.New("unknown keyboard layout")
	ErrUnknownTheme               = errors.New("unknown keyboard theme")
	ErrInvalidColor               = errors.New("invalid hex colour")
	ErrLayoutChangeDuringDispatch = errors.New("layout change requested while a key is being dispatched")
)

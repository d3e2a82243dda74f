package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrDataInsufficient = errors.New("no usable recovery metrics available")
	ErrConfiguration    = errors.New("invalid scoring configuration")
	ErrInvalidInput     = errors.New("invalid input")
)

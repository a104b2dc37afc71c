package search

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrPropertyNotFound = errors.New("property not found")
	ErrPageOutOfRange   = errors.New("page number out of range")
)

package rates

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrNotFound     = errors.New("peak season rate not found")
	ErrInvalidRange = errors.New("end date must not be before start date")
	ErrPastStart    = errors.New("start date must not be in the past")
	ErrInvalidType  = errors.New("type must be one of: percentage, fixed")
	ErrInvalidValue = errors.New("value must be positive; percentage must not exceed 100")
	ErrOverlap      = errors.New("range overlaps an existing peak season rate")
)

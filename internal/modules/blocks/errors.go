package blocks

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrNotFound     = errors.New("unavailability not found")
	ErrInvalidRange = errors.New("end date must not be before start date")
	ErrPastStart    = errors.New("start date must not be in the past")
	ErrOverlap      = errors.New("range overlaps an existing unavailability")
)

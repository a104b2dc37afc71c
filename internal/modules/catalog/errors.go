package catalog

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCityNotFound     = errors.New("city not found")
	ErrHasRooms         = errors.New("property still has rooms")
	ErrHasBookings      = errors.New("room has active bookings")
	ErrCategoryInUse    = errors.New("category is referenced by properties")
)

package domain

import "time"

// Room is a bookable room type within a property. Quantity is the number of
// concurrent units of this type; Price is the base nightly rate in integer
// currency units.
type Room struct {
	ID          int64  `json:"id"`
	PropertyID  int64  `json:"property_id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	MaxGuests   int    `json:"max_guests" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Bookings         []Booking            `json:"bookings,omitempty" gorm:"foreignKey:RoomID"`
	Unavailabilities []RoomUnavailability `json:"room_unavailabilities,omitempty" gorm:"foreignKey:RoomID"`
	PeakRates        []PeakSeasonRate     `json:"peak_season_rates,omitempty" gorm:"foreignKey:RoomID"`
	Pictures         []RoomPicture        `json:"pictures,omitempty" gorm:"foreignKey:RoomID"`
}

type RoomPicture struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import "time"

// Booking statuses. Bookings are created by the external booking subsystem;
// this service only reads them when resolving availability.
const (
	BookingStatusCanceled  = 1
	BookingStatusConfirmed = 2
	BookingStatusPaid      = 3
)

// Booking reserves one unit of a room for the nights [CheckIn, CheckOut):
// the guest occupies the room on CheckIn and leaves on CheckOut.
type Booking struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	StatusID  int       `json:"status_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Booking) IsCanceled() bool { return b.StatusID == BookingStatusCanceled }

package search

import (
	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

// resolvedRoom is a room with its derived availability and pricing for one
// window. Search, detail and calendar all derive it through resolveRoom so
// the three surfaces can never disagree.
type resolvedRoom struct {
	Room              domain.Room
	AvailableQuantity int
	FinalPrice        int64
}

func (r resolvedRoom) Available() bool { return r.AvailableQuantity > 0 }

// resolveRoom is the availability primitive: a pure function of the room,
// its pre-filtered child collections and the window of interest.
//
// Available quantity is quantity minus the active bookings whose nights
// intersect the window, clamped at zero, and forced to zero when any
// unavailability covers part of the window. The final nightly price is the
// base price modified by the first peak rate intersecting the window; the
// no-overlap invariant guarantees at most one rate per day.
func resolveRoom(room domain.Room, window daterange.Range) resolvedRoom {
	booked := 0
	for i := range room.Bookings {
		b := &room.Bookings[i]
		if b.IsCanceled() {
			continue
		}
		if daterange.Nights(b.CheckIn, b.CheckOut).Overlaps(window) {
			booked++
		}
	}

	available := room.Quantity - booked
	if available < 0 {
		available = 0
	}

	for i := range room.Unavailabilities {
		u := &room.Unavailabilities[i]
		if daterange.New(u.StartDate, u.EndDate).Overlaps(window) {
			available = 0
			break
		}
	}

	price := room.Price
	for i := range room.PeakRates {
		rate := &room.PeakRates[i]
		if daterange.New(rate.StartDate, rate.EndDate).Overlaps(window) {
			price = rate.Apply(room.Price)
			break
		}
	}

	return resolvedRoom{
		Room:              room,
		AvailableQuantity: available,
		FinalPrice:        price,
	}
}

// resolveRooms keeps only the rooms still bookable within the window.
func resolveRooms(rooms []domain.Room, window daterange.Range) []resolvedRoom {
	out := make([]resolvedRoom, 0, len(rooms))
	for _, room := range rooms {
		if resolved := resolveRoom(room, window); resolved.Available() {
			out = append(out, resolved)
		}
	}
	return out
}

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/daterange"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(inY int, inM time.Month, inD, outD int) daterange.Range {
	return daterange.Nights(date(inY, inM, inD), date(inY, inM, outD))
}

func TestResolveRoom_NoChildren_FullQuantityBasePrice(t *testing.T) {
	room := domain.Room{Quantity: 3, Price: 50000}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, 3, r.AvailableQuantity)
	assert.Equal(t, int64(50000), r.FinalPrice)
	assert.True(t, r.Available())
}

func TestResolveRoom_BookingsReduceQuantity(t *testing.T) {
	room := domain.Room{
		Quantity: 2,
		Price:    50000,
		Bookings: []domain.Booking{
			{CheckIn: date(2026, time.June, 9), CheckOut: date(2026, time.June, 11), StatusID: domain.BookingStatusConfirmed},
			{CheckIn: date(2026, time.June, 11), CheckOut: date(2026, time.June, 13), StatusID: domain.BookingStatusPaid},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, 0, r.AvailableQuantity)
	assert.False(t, r.Available())
}

func TestResolveRoom_CanceledBookingsIgnored(t *testing.T) {
	room := domain.Room{
		Quantity: 1,
		Price:    50000,
		Bookings: []domain.Booking{
			{CheckIn: date(2026, time.June, 10), CheckOut: date(2026, time.June, 12), StatusID: domain.BookingStatusCanceled},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, 1, r.AvailableQuantity)
}

func TestResolveRoom_CheckoutDayFreesRoom(t *testing.T) {
	// A booking ending June 10 holds the nights of June 8 and 9 only, so a
	// stay starting June 10 does not contend with it.
	room := domain.Room{
		Quantity: 1,
		Price:    50000,
		Bookings: []domain.Booking{
			{CheckIn: date(2026, time.June, 8), CheckOut: date(2026, time.June, 10), StatusID: domain.BookingStatusConfirmed},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, 1, r.AvailableQuantity)
}

func TestResolveRoom_OverbookedClampsAtZero(t *testing.T) {
	room := domain.Room{
		Quantity: 1,
		Price:    50000,
		Bookings: []domain.Booking{
			{CheckIn: date(2026, time.June, 9), CheckOut: date(2026, time.June, 12), StatusID: domain.BookingStatusConfirmed},
			{CheckIn: date(2026, time.June, 10), CheckOut: date(2026, time.June, 11), StatusID: domain.BookingStatusPaid},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, 0, r.AvailableQuantity)
}

func TestResolveRoom_UnavailabilityZeroesQuantity(t *testing.T) {
	room := domain.Room{
		Quantity: 5,
		Price:    50000,
		Unavailabilities: []domain.RoomUnavailability{
			{StartDate: date(2026, time.June, 11), EndDate: date(2026, time.June, 11)},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, 0, r.AvailableQuantity)
}

func TestResolveRoom_UnavailabilityEndingBeforeStayIgnored(t *testing.T) {
	room := domain.Room{
		Quantity: 5,
		Price:    50000,
		Unavailabilities: []domain.RoomUnavailability{
			{StartDate: date(2026, time.June, 1), EndDate: date(2026, time.June, 9)},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, 5, r.AvailableQuantity)
}

func TestResolveRoom_PercentageRate(t *testing.T) {
	room := domain.Room{
		Quantity: 1,
		Price:    100000,
		PeakRates: []domain.PeakSeasonRate{
			{StartDate: date(2026, time.June, 1), EndDate: date(2026, time.June, 30), Type: domain.RatePercentage, Value: 25},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, int64(125000), r.FinalPrice)
}

func TestResolveRoom_FixedRate(t *testing.T) {
	room := domain.Room{
		Quantity: 1,
		Price:    100000,
		PeakRates: []domain.PeakSeasonRate{
			{StartDate: date(2026, time.June, 1), EndDate: date(2026, time.June, 30), Type: domain.RateFixed, Value: 15000},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, int64(115000), r.FinalPrice)
}

func TestResolveRoom_FirstOverlappingRateWins(t *testing.T) {
	room := domain.Room{
		Quantity: 1,
		Price:    100000,
		PeakRates: []domain.PeakSeasonRate{
			{StartDate: date(2026, time.June, 1), EndDate: date(2026, time.June, 10), Type: domain.RatePercentage, Value: 10},
			{StartDate: date(2026, time.June, 11), EndDate: date(2026, time.June, 20), Type: domain.RatePercentage, Value: 50},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, int64(110000), r.FinalPrice)
}

func TestResolveRoom_RateOutsideWindowIgnored(t *testing.T) {
	room := domain.Room{
		Quantity: 1,
		Price:    100000,
		PeakRates: []domain.PeakSeasonRate{
			{StartDate: date(2026, time.July, 1), EndDate: date(2026, time.July, 31), Type: domain.RatePercentage, Value: 50},
		},
	}

	r := resolveRoom(room, stay(2026, time.June, 10, 12))

	assert.Equal(t, int64(100000), r.FinalPrice)
}

func TestResolveRooms_DropsUnavailable(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, Quantity: 1, Price: 50000},
		{ID: 2, Quantity: 1, Price: 60000, Unavailabilities: []domain.RoomUnavailability{
			{StartDate: date(2026, time.June, 10), EndDate: date(2026, time.June, 12)},
		}},
	}

	resolved := resolveRooms(rooms, stay(2026, time.June, 10, 12))

	assert.Len(t, resolved, 1)
	assert.Equal(t, int64(1), resolved[0].Room.ID)
}

package domain

import (
	"math"
	"time"
)

// RoomUnavailability blocks every unit of a room for the inclusive date range
// [StartDate, EndDate] (maintenance and the like). Availability drops to zero
// for any day the range covers, regardless of remaining quantity.
type RoomUnavailability struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

type RateType string

const (
	RatePercentage RateType = "percentage"
	RateFixed      RateType = "fixed"
)

// PeakSeasonRate overrides a room's nightly price during the inclusive date
// range [StartDate, EndDate]. Windows of a room never overlap; that invariant
// is enforced at create/update time.
type PeakSeasonRate struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	Type      RateType  `json:"type"`
	Value     float64   `json:"value"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Apply returns the nightly price after this rate modifies the base price.
func (r *PeakSeasonRate) Apply(base int64) int64 {
	switch r.Type {
	case RatePercentage:
		return base + int64(math.Round(float64(base)*r.Value/100))
	case RateFixed:
		return base + int64(math.Round(r.Value))
	}
	return base
}

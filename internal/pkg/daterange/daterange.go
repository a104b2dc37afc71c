// Package daterange holds the canonical calendar-date interval predicates used
// by every availability, pricing and schedule-mutation path. Call sites must
// not reimplement these comparisons.
package daterange

import "time"

const ISODate = "2006-01-02"

// Day normalizes t to midnight UTC of its wall-clock date. Parsed ISO dates
// and Day(time.Now()) are therefore directly comparable.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse parses an ISO calendar date (YYYY-MM-DD).
func Parse(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// Range is an inclusive range of calendar days.
type Range struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) Range {
	return Range{Start: Day(start), End: Day(end)}
}

// SingleDay is the range covering exactly one calendar day.
func SingleDay(day time.Time) Range {
	d := Day(day)
	return Range{Start: d, End: d}
}

// Nights converts a stay [checkIn, checkOut) into the inclusive range of
// nights the guest occupies the room. checkOut itself is not a night.
func Nights(checkIn, checkOut time.Time) Range {
	return Range{Start: Day(checkIn), End: Day(checkOut).AddDate(0, 0, -1)}
}

// Contains reports whether the given day falls within the range.
func (r Range) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether two inclusive day ranges share at least one day.
func (r Range) Overlaps(o Range) bool {
	return !r.End.Before(o.Start) && !o.End.Before(r.Start)
}

// Conflicts is the mutation-guard overlap test applied when creating or
// moving a schedule window: r conflicts with an existing window when r.Start
// falls within [o.Start, o.End), r.End falls within (o.Start, o.End], or r
// fully contains o. Windows that merely touch at a shared boundary day do not
// conflict.
func (r Range) Conflicts(o Range) bool {
	if !r.Start.Before(o.Start) && r.Start.Before(o.End) {
		return true
	}
	if r.End.After(o.Start) && !r.End.After(o.End) {
		return true
	}
	return !r.Start.After(o.Start) && !r.End.Before(o.End)
}

// Valid reports whether the range is non-empty (end not before start).
func (r Range) Valid() bool {
	return !r.End.Before(r.Start)
}

// Days returns each calendar day of the range in order.
func (r Range) Days() []time.Time {
	if !r.Valid() {
		return nil
	}
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Month returns the inclusive day range of a calendar month.
func Month(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(0, 1, -1)}
}

package service

import (
	"errors"
	"time"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

// ── scheduling validation errors ──

var (
	// ErrInvalidInterval rejects a candidate whose end is not after its start.
	ErrInvalidInterval = errors.New("interval end must be after start")
	// ErrOverlap rejects a candidate that intersects an existing active
	// entry on the same resource.
	ErrOverlap = errors.New("interval overlaps an existing schedule entry")
	// ErrDuplicateSlot rejects an exact duplicate class period tuple.
	ErrDuplicateSlot = errors.New("identical class period slot already exists")
)

// intervalsOverlap reports whether the half-open intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. Touching intervals do not overlap.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return bStart.Before(aEnd) && aStart.Before(bEnd)
}

// timeRangesOverlap is the "HH:MM" time-of-day equivalent. All inputs
// must be canonical "HH:MM" (DTO binding enforces it for candidates,
// model.TimeOfDay scanning for stored rows); lexicographic comparison is
// then ordering-correct for zero-padded 24h times.
func timeRangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return bStart < aEnd && aStart < bEnd
}

// validateBookingInterval fail-fasts before any overlap computation.
func validateBookingInterval(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidInterval
	}
	return nil
}

// validatePeriodInterval fail-fasts on a "HH:MM" time-of-day interval.
func validatePeriodInterval(start, end string) error {
	if end <= start {
		return ErrInvalidInterval
	}
	return nil
}

// findBookingConflict returns the first confirmed booking whose interval
// intersects [start, end), or nil. Cancelled and pending bookings do not
// hold capacity.
func findBookingConflict(start, end time.Time, existing []model.Booking) *model.Booking {
	for i := range existing {
		b := &existing[i]
		if b.Status != model.BookingStatusConfirmed {
			continue
		}
		if intervalsOverlap(start, end, b.StartTime, b.EndTime) {
			return b
		}
	}
	return nil
}

// findPeriodConflict returns the first class period on the same day of
// week whose time interval intersects [start, end), or nil. Recurring and
// one-off periods are compared on day of week only.
func findPeriodConflict(dayOfWeek int, start, end string, existing []model.ClassPeriod) *model.ClassPeriod {
	for i := range existing {
		p := &existing[i]
		if p.DayOfWeek != dayOfWeek {
			continue
		}
		if timeRangesOverlap(start, end, string(p.PeriodStart), string(p.PeriodEnd)) {
			return p
		}
	}
	return nil
}

// Package availability holds the pure occupancy calculus for cabins.
// It is side-effect free; admission atomicity lives in the repositories.
package availability

import (
	"sort"
	"time"

	"pinelodge/internal/domain/booking"
	"pinelodge/internal/domain/shared/staydates"
)

// IsAvailable reports whether the stay can be booked given the cabin's
// current bookings. Only pending and confirmed bookings block; the
// inclusive day-set semantics mean a stay starting on another stay's
// checkout day still conflicts.
func IsAvailable(bookings []*booking.Booking, stay staydates.StayRange) bool {
	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		if b.Stay.Overlaps(stay) {
			return false
		}
	}
	return true
}

// OccupiedDays returns the deduplicated union of all inclusive day-sets
// across the cabin's blocking bookings, sorted ascending.
func OccupiedDays(bookings []*booking.Booking) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		for _, day := range b.Stay.Days() {
			seen[day] = struct{}{}
		}
	}
	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

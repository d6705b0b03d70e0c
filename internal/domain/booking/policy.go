package booking

import (
	"errors"
	"time"

	"pinelodge/internal/domain/shared/staydates"
)

var (
	ErrCheckInInPast = errors.New("booking: check-in date is in the past")
	ErrStayTooShort  = errors.New("booking: stay is shorter than the minimum booking length")
	ErrStayTooLong   = errors.New("booking: stay is longer than the maximum booking length")
	ErrTooManyGuests = errors.New("booking: guests exceed the allowed maximum")
)

// ValidateStayPolicy checks a requested stay against the site rules.
func ValidateStayPolicy(stay staydates.StayRange, now time.Time, minNights, maxNights int) error {
	if stay.CheckIn.Before(staydates.Day(now)) {
		return ErrCheckInInPast
	}
	nights := stay.Nights()
	if minNights > 0 && nights < minNights {
		return ErrStayTooShort
	}
	if maxNights > 0 && nights > maxNights {
		return ErrStayTooLong
	}
	return nil
}

// ValidateGuestCount checks the party size against the cabin capacity and
// the site-wide ceiling.
func ValidateGuestCount(guests, cabinCapacity, siteMax int) error {
	if guests <= 0 {
		return ErrInvalidGuests
	}
	if cabinCapacity > 0 && guests > cabinCapacity {
		return ErrTooManyGuests
	}
	if siteMax > 0 && guests > siteMax {
		return ErrTooManyGuests
	}
	return nil
}

package staydates

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("staydates: checkout must be after checkin")
	ErrBadDate      = errors.New("staydates: date must be formatted YYYY-MM-DD")
)

// ISODate is the wire format for calendar days.
const ISODate = "2006-01-02"

// StayRange is a stay between two calendar days. Unlike a half-open
// interval, both endpoints count as occupied: the checkout day is kept
// blocked so no same-day turnover booking can be admitted.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func New(checkIn, checkOut time.Time) (StayRange, error) {
	sr := StayRange{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
	if err := sr.Validate(); err != nil {
		return StayRange{}, err
	}
	return sr, nil
}

func (sr StayRange) Validate() error {
	if sr.CheckIn.IsZero() || sr.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !sr.CheckOut.After(sr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

// Nights is the number of nights spent, checkout day excluded.
func (sr StayRange) Nights() int {
	return int(sr.CheckOut.Sub(sr.CheckIn).Hours() / 24)
}

// Days enumerates every occupied calendar day, checkin through checkout
// inclusive.
func (sr StayRange) Days() []time.Time {
	var days []time.Time
	for d := sr.CheckIn; !d.After(sr.CheckOut); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Overlaps reports whether the inclusive day-sets of both stays intersect.
// Two stays sharing only a checkout/checkin day still conflict.
func (sr StayRange) Overlaps(other StayRange) bool {
	return !sr.CheckOut.Before(other.CheckIn) && !other.CheckOut.Before(sr.CheckIn)
}

func (sr StayRange) OccupiesDay(t time.Time) bool {
	t = Day(t)
	return !t.Before(sr.CheckIn) && !t.After(sr.CheckOut)
}

// Day truncates a timestamp to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(ISODate, value)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

func FormatDay(t time.Time) string {
	return t.UTC().Format(ISODate)
}

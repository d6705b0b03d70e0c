package booking

import (
	"time"

	"pinelodge/internal/domain/cabins"
)

type BookingAdmitted struct {
	Reference Reference      `json:"reference"`
	CabinID   cabins.CabinID `json:"cabin_id"`
	CheckIn   time.Time      `json:"check_in"`
	CheckOut  time.Time      `json:"check_out"`
	Total     int64          `json:"total_cents"`
	At        time.Time      `json:"at"`
}

func (e BookingAdmitted) EventName() string     { return "booking.admitted" }
func (e BookingAdmitted) AggregateID() string   { return string(e.Reference) }
func (e BookingAdmitted) OccurredAt() time.Time { return e.At }

type BookingCancelled struct {
	Reference Reference      `json:"reference"`
	CabinID   cabins.CabinID `json:"cabin_id"`
	At        time.Time      `json:"at"`
}

func (e BookingCancelled) EventName() string     { return "booking.cancelled" }
func (e BookingCancelled) AggregateID() string   { return string(e.Reference) }
func (e BookingCancelled) OccurredAt() time.Time { return e.At }

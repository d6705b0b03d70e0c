package availability

import (
	"context"

	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/queries"
	domainavailability "pinelodge/internal/domain/availability"
	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
)

const occupiedDatesKey = "availability.occupied_dates"

type OccupiedDatesQuery struct {
	CabinName string
}

func (q OccupiedDatesQuery) Key() string { return occupiedDatesKey }

type OccupiedDatesHandler struct {
	Cabins   domaincabins.Repository
	Bookings domainbooking.Repository
}

// Handle is read-only: it enumerates the inclusive day-set union across
// the cabin's pending and confirmed bookings.
func (h *OccupiedDatesHandler) Handle(ctx context.Context, q OccupiedDatesQuery) (dto.OccupiedDates, error) {
	cabin, err := h.Cabins.ByName(ctx, q.CabinName)
	if err != nil {
		return dto.OccupiedDates{}, err
	}
	bookings, err := h.Bookings.ListByCabin(ctx, cabin.ID)
	if err != nil {
		return dto.OccupiedDates{}, err
	}
	days := domainavailability.OccupiedDays(bookings)
	return dto.MapOccupiedDates(cabin.Name, days), nil
}

var _ queries.Handler[OccupiedDatesQuery, dto.OccupiedDates] = (*OccupiedDatesHandler)(nil)

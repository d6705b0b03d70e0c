package booking

import (
	"context"

	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/queries"
	domainbooking "pinelodge/internal/domain/booking"
)

const lookupBookingKey = "booking.lookup"

type LookupBookingQuery struct {
	Reference string
}

func (q LookupBookingQuery) Key() string { return lookupBookingKey }

type LookupBookingHandler struct {
	Bookings domainbooking.Repository
}

func (h *LookupBookingHandler) Handle(ctx context.Context, q LookupBookingQuery) (dto.BookingDetail, error) {
	ref := domainbooking.CanonicalReference(q.Reference)
	if ref == "" {
		return dto.BookingDetail{}, domainbooking.ErrEmptyReference
	}
	b, err := h.Bookings.ByReference(ctx, ref)
	if err != nil {
		return dto.BookingDetail{}, err
	}
	return dto.MapBookingDetail(b), nil
}

var _ queries.Handler[LookupBookingQuery, dto.BookingDetail] = (*LookupBookingHandler)(nil)

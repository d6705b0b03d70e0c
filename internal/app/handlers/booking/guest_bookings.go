package booking

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/queries"
	domainbooking "pinelodge/internal/domain/booking"
)

const listGuestBookingsKey = "booking.list_guest"

var ErrEmailRequired = errors.New("booking: guest email required for listing")

type ListGuestBookingsQuery struct {
	GuestEmail string
}

func (q ListGuestBookingsQuery) Key() string { return listGuestBookingsKey }

type ListGuestBookingsHandler struct {
	Bookings domainbooking.Repository
}

// Handle lists the guest's bookings newest first.
func (h *ListGuestBookingsHandler) Handle(ctx context.Context, q ListGuestBookingsQuery) (dto.BookingCollection, error) {
	email := strings.ToLower(strings.TrimSpace(q.GuestEmail))
	if email == "" {
		return dto.BookingCollection{}, ErrEmailRequired
	}
	bookings, err := h.Bookings.ListByGuestEmail(ctx, email)
	if err != nil {
		return dto.BookingCollection{}, err
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return dto.MapBookingCollection(bookings), nil
}

var _ queries.Handler[ListGuestBookingsQuery, dto.BookingCollection] = (*ListGuestBookingsHandler)(nil)

package booking

import (
	"context"
	"time"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/outbox"
	domainbooking "pinelodge/internal/domain/booking"
)

const cancelBookingKey = "booking.cancel"

type CancelBookingCommand struct {
	Reference string
}

func (c CancelBookingCommand) Key() string { return cancelBookingKey }

type CancelBookingHandler struct {
	Bookings domainbooking.Repository
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
	Now      func() time.Time
}

// Handle cancels the booking unconditionally when it exists. Re-cancelling
// is a no-op success; an unknown reference is ErrNotFound.
func (h *CancelBookingHandler) Handle(ctx context.Context, cmd CancelBookingCommand) (dto.BookingDetail, error) {
	ref := domainbooking.CanonicalReference(cmd.Reference)
	if ref == "" {
		return dto.BookingDetail{}, domainbooking.ErrEmptyReference
	}
	b, err := h.Bookings.ByReference(ctx, ref)
	if err != nil {
		return dto.BookingDetail{}, err
	}

	b.Cancel(h.now())
	if err := h.Bookings.Save(ctx, b); err != nil {
		return dto.BookingDetail{}, err
	}

	pending := b.PendingEvents()
	b.ClearEvents()
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, pending); err != nil {
		return dto.BookingDetail{}, err
	}
	return dto.MapBookingDetail(b), nil
}

func (h *CancelBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[CancelBookingCommand, dto.BookingDetail] = (*CancelBookingHandler)(nil)

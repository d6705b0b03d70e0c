package booking

import (
	"context"
	"time"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	domainbooking "pinelodge/internal/domain/booking"
)

const attachMessageKey = "booking.attach_message"

type AttachGuestMessageCommand struct {
	Reference string
	Message   string
}

func (c AttachGuestMessageCommand) Key() string { return attachMessageKey }

type AttachGuestMessageHandler struct {
	Bookings domainbooking.Repository
	Now      func() time.Time
}

func (h *AttachGuestMessageHandler) Handle(ctx context.Context, cmd AttachGuestMessageCommand) (dto.BookingDetail, error) {
	ref := domainbooking.CanonicalReference(cmd.Reference)
	if ref == "" {
		return dto.BookingDetail{}, domainbooking.ErrEmptyReference
	}
	b, err := h.Bookings.ByReference(ctx, ref)
	if err != nil {
		return dto.BookingDetail{}, err
	}

	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now().UTC()
	}
	if err := b.AttachGuestMessage(cmd.Message, now); err != nil {
		return dto.BookingDetail{}, err
	}
	if err := h.Bookings.Save(ctx, b); err != nil {
		return dto.BookingDetail{}, err
	}
	return dto.MapBookingDetail(b), nil
}

var _ commands.Handler[AttachGuestMessageCommand, dto.BookingDetail] = (*AttachGuestMessageHandler)(nil)

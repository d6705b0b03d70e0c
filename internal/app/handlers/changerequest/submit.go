package changerequest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/outbox"
	domainbooking "pinelodge/internal/domain/booking"
	domainchange "pinelodge/internal/domain/changerequest"
	"pinelodge/internal/domain/shared/events"
	"pinelodge/internal/domain/shared/staydates"
)

const submitChangeRequestKey = "changerequest.submit"

type SubmitChangeRequestCommand struct {
	Reference         string
	RequestedCheckIn  time.Time
	RequestedCheckOut time.Time
	Message           string
}

func (c SubmitChangeRequestCommand) Key() string { return submitChangeRequestKey }

type SubmitChangeRequestHandler struct {
	Bookings domainbooking.Repository
	Requests domainchange.Repository
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
	Now      func() time.Time
}

// Handle records the guest's proposal without touching the booking. The
// requested range is not checked against availability here; that belongs
// to the external review flow that adjudicates the request.
func (h *SubmitChangeRequestHandler) Handle(ctx context.Context, cmd SubmitChangeRequestCommand) (dto.ChangeRequestDetail, error) {
	ref := domainbooking.CanonicalReference(cmd.Reference)
	if ref == "" {
		return dto.ChangeRequestDetail{}, domainbooking.ErrEmptyReference
	}
	b, err := h.Bookings.ByReference(ctx, ref)
	if err != nil {
		return dto.ChangeRequestDetail{}, err
	}

	requested, err := staydates.New(cmd.RequestedCheckIn, cmd.RequestedCheckOut)
	if err != nil {
		return dto.ChangeRequestDetail{}, err
	}

	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now().UTC()
	}
	request, err := domainchange.Submit(domainchange.SubmitParams{
		ID:            uuid.NewString(),
		Booking:       b,
		RequestedStay: requested,
		Message:       cmd.Message,
		CreatedAt:     now,
	})
	if err != nil {
		return dto.ChangeRequestDetail{}, err
	}
	if err := h.Requests.Insert(ctx, request); err != nil {
		return dto.ChangeRequestDetail{}, err
	}

	ev := events.BaseEvent{Name: "booking.date_change_requested", Aggregate: string(ref), Time: now}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, []events.DomainEvent{ev}); err != nil {
		return dto.ChangeRequestDetail{}, err
	}
	return dto.MapChangeRequest(request), nil
}

var _ commands.Handler[SubmitChangeRequestCommand, dto.ChangeRequestDetail] = (*SubmitChangeRequestHandler)(nil)

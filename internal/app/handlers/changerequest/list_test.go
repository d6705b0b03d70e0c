package changerequest

import (
	"context"
	"errors"
	"testing"
	"time"

	domainbooking "pinelodge/internal/domain/booking"
	"pinelodge/internal/infra/storage/memory"
)

func TestListChangeRequestsForBooking(t *testing.T) {
	ctx := context.Background()
	bookings := memory.NewBookingRepository()
	requests := memory.NewChangeRequestRepository()
	seedBooking(t, bookings)

	submit := &SubmitChangeRequestHandler{Bookings: bookings, Requests: requests}
	for i := 0; i < 2; i++ {
		if _, err := submit.Handle(ctx, SubmitChangeRequestCommand{
			Reference:         "CHREF001",
			RequestedCheckIn:  time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC),
			RequestedCheckOut: time.Date(2026, 8, 5+i, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	list := &ListChangeRequestsHandler{Bookings: bookings, Requests: requests}
	got, err := list.Handle(ctx, ListChangeRequestsQuery{Reference: "chref001"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Items))
	}
	if got.Items[0].BookingReference != "CHREF001" {
		t.Fatalf("reference = %q", got.Items[0].BookingReference)
	}
	if got.Items[0].RequestedCheckIn != "2026-08-01" {
		t.Fatalf("first requested check-in = %q", got.Items[0].RequestedCheckIn)
	}
}

func TestListChangeRequestsEmptyHistory(t *testing.T) {
	bookings := memory.NewBookingRepository()
	seedBooking(t, bookings)
	list := &ListChangeRequestsHandler{Bookings: bookings, Requests: memory.NewChangeRequestRepository()}

	got, err := list.Handle(context.Background(), ListChangeRequestsQuery{Reference: "CHREF001"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Fatalf("items = %v, want empty slice", got.Items)
	}
}

func TestListChangeRequestsUnknownBooking(t *testing.T) {
	list := &ListChangeRequestsHandler{
		Bookings: memory.NewBookingRepository(),
		Requests: memory.NewChangeRequestRepository(),
	}
	_, err := list.Handle(context.Background(), ListChangeRequestsQuery{Reference: "MISSING1"})
	if !errors.Is(err, domainbooking.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

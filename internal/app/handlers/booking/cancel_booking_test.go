package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainbooking "pinelodge/internal/domain/booking"
)

func admitBooking(t *testing.T, f fixture) string {
	t.Helper()
	got, err := f.handler.Handle(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("admit booking: %v", err)
	}
	return got.BookingReference
}

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ref := admitBooking(t, f)

	cancel := &CancelBookingHandler{Bookings: f.bookings, Outbox: f.box, Now: func() time.Time { return fixedNow }}
	got, err := cancel.Handle(ctx, CancelBookingCommand{Reference: ref})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != "cancelled" {
		t.Fatalf("status = %q, want cancelled", got.Status)
	}

	// A cancelled booking no longer blocks the dates.
	if _, err := f.handler.Handle(ctx, validCommand()); err != nil {
		t.Fatalf("rebooking after cancel: %v", err)
	}
}

func TestCancelBookingIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ref := admitBooking(t, f)

	cancel := &CancelBookingHandler{Bookings: f.bookings, Outbox: f.box, Now: func() time.Time { return fixedNow }}
	if _, err := cancel.Handle(ctx, CancelBookingCommand{Reference: ref}); err != nil {
		t.Fatalf("first cancel: %v", err)
	}

	before := len(f.box.Records())
	got, err := cancel.Handle(ctx, CancelBookingCommand{Reference: ref})
	if err != nil {
		t.Fatalf("second cancel should succeed: %v", err)
	}
	if got.Status != "cancelled" {
		t.Fatalf("status = %q", got.Status)
	}
	if len(f.box.Records()) != before {
		t.Fatal("second cancel should not emit another event")
	}
}

func TestCancelBookingCaseInsensitiveReference(t *testing.T) {
	f := newFixture(t)
	ref := admitBooking(t, f)

	cancel := &CancelBookingHandler{Bookings: f.bookings, Now: func() time.Time { return fixedNow }}
	mangled := "  " + strings.ToLower(ref) + " "
	if _, err := cancel.Handle(context.Background(), CancelBookingCommand{Reference: mangled}); err != nil {
		t.Fatalf("cancel with mangled reference: %v", err)
	}
}

func TestCancelBookingUnknownReference(t *testing.T) {
	f := newFixture(t)
	cancel := &CancelBookingHandler{Bookings: f.bookings, Now: func() time.Time { return fixedNow }}
	if _, err := cancel.Handle(context.Background(), CancelBookingCommand{Reference: "ZZZZZZZZ"}); !errors.Is(err, domainbooking.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := cancel.Handle(context.Background(), CancelBookingCommand{Reference: "  "}); !errors.Is(err, domainbooking.ErrEmptyReference) {
		t.Fatalf("expected ErrEmptyReference, got %v", err)
	}
}

func TestAttachGuestMessageOverwritesPrevious(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ref := admitBooking(t, f)

	attach := &AttachGuestMessageHandler{Bookings: f.bookings, Now: func() time.Time { return fixedNow }}
	if _, err := attach.Handle(ctx, AttachGuestMessageCommand{Reference: ref, Message: "extra towels"}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	got, err := attach.Handle(ctx, AttachGuestMessageCommand{Reference: ref, Message: "late arrival"})
	if err != nil {
		t.Fatalf("attach again: %v", err)
	}
	if got.SpecialRequests != "late arrival" {
		t.Fatalf("special requests = %q, want last message only", got.SpecialRequests)
	}
}

func TestAttachGuestMessageEmpty(t *testing.T) {
	f := newFixture(t)
	ref := admitBooking(t, f)
	attach := &AttachGuestMessageHandler{Bookings: f.bookings, Now: func() time.Time { return fixedNow }}
	if _, err := attach.Handle(context.Background(), AttachGuestMessageCommand{Reference: ref, Message: "  "}); !errors.Is(err, domainbooking.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestLookupBooking(t *testing.T) {
	f := newFixture(t)
	ref := admitBooking(t, f)

	lookup := &LookupBookingHandler{Bookings: f.bookings}
	got, err := lookup.Handle(context.Background(), LookupBookingQuery{Reference: ref})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.BookingReference != ref {
		t.Fatalf("reference = %q, want %q", got.BookingReference, ref)
	}
	if got.CheckIn != "2026-07-10" || got.CheckOut != "2026-07-15" {
		t.Fatalf("dates = %s..%s", got.CheckIn, got.CheckOut)
	}

	if _, err := lookup.Handle(context.Background(), LookupBookingQuery{Reference: "ZZZZZZZZ"}); !errors.Is(err, domainbooking.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListGuestBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admitBooking(t, f)

	list := &ListGuestBookingsHandler{Bookings: f.bookings}
	got, err := list.Handle(ctx, ListGuestBookingsQuery{GuestEmail: "MAIJA@example.com"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(got.Items))
	}

	if _, err := list.Handle(ctx, ListGuestBookingsQuery{GuestEmail: " "}); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}

	empty, err := list.Handle(ctx, ListGuestBookingsQuery{GuestEmail: "nobody@example.com"})
	if err != nil {
		t.Fatalf("list unknown guest: %v", err)
	}
	if len(empty.Items) != 0 {
		t.Fatalf("items = %d, want 0", len(empty.Items))
	}
}

package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
	"pinelodge/internal/domain/shared/staydates"
	"pinelodge/internal/infra/storage/memory"
)

func seed(t *testing.T) (*memory.CabinRepository, *memory.BookingRepository) {
	t.Helper()
	ctx := context.Background()
	cabins := memory.NewCabinRepository()
	bookings := memory.NewBookingRepository()
	cabin := &domaincabins.Cabin{ID: "the-pine", Name: "the-pine", MaxCapacity: 4, RegularPriceCents: 25000}
	if err := cabins.Save(ctx, cabin); err != nil {
		t.Fatalf("save cabin: %v", err)
	}
	return cabins, bookings
}

func admit(t *testing.T, repo *memory.BookingRepository, ref, checkIn, checkOut string) *domainbooking.Booking {
	t.Helper()
	ci, _ := staydates.ParseDay(checkIn)
	co, _ := staydates.ParseDay(checkOut)
	stay, err := staydates.New(ci, co)
	if err != nil {
		t.Fatalf("staydates.New: %v", err)
	}
	b, err := domainbooking.New(domainbooking.CreateParams{
		Reference: domainbooking.Reference(ref),
		CabinID:   "the-pine",
		CabinName: "the-pine",
		Guest:     domainbooking.Guest{Email: "guest@example.com"},
		Stay:      stay,
		Guests:    2,
		CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("booking.New: %v", err)
	}
	if err := repo.Admit(context.Background(), b); err != nil {
		t.Fatalf("admit %s: %v", ref, err)
	}
	return b
}

func TestOccupiedDatesInclusiveDaySet(t *testing.T) {
	ctx := context.Background()
	cabins, bookings := seed(t)
	admit(t, bookings, "REF00001", "2026-07-10", "2026-07-12")

	handler := &OccupiedDatesHandler{Cabins: cabins, Bookings: bookings}
	got, err := handler.Handle(ctx, OccupiedDatesQuery{CabinName: "The-Pine"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got.CabinName != "the-pine" {
		t.Fatalf("cabin name = %q", got.CabinName)
	}
	want := []string{"2026-07-10", "2026-07-11", "2026-07-12"}
	if len(got.BookedDates) != len(want) {
		t.Fatalf("booked dates = %v, want %v", got.BookedDates, want)
	}
	for i := range want {
		if got.BookedDates[i] != want[i] {
			t.Fatalf("booked dates = %v, want %v", got.BookedDates, want)
		}
	}
}

func TestOccupiedDatesExcludesCancelled(t *testing.T) {
	ctx := context.Background()
	cabins, bookings := seed(t)
	b := admit(t, bookings, "REF00001", "2026-07-10", "2026-07-12")
	b.Cancel(time.Now())
	if err := bookings.Save(ctx, b); err != nil {
		t.Fatalf("save: %v", err)
	}

	handler := &OccupiedDatesHandler{Cabins: cabins, Bookings: bookings}
	got, err := handler.Handle(ctx, OccupiedDatesQuery{CabinName: "the-pine"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(got.BookedDates) != 0 {
		t.Fatalf("booked dates = %v, want empty", got.BookedDates)
	}
}

func TestOccupiedDatesUnknownCabin(t *testing.T) {
	cabins, bookings := seed(t)
	handler := &OccupiedDatesHandler{Cabins: cabins, Bookings: bookings}
	if _, err := handler.Handle(context.Background(), OccupiedDatesQuery{CabinName: "no-such"}); !errors.Is(err, domaincabins.ErrCabinNotFound) {
		t.Fatalf("expected ErrCabinNotFound, got %v", err)
	}
}

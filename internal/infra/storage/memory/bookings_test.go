package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
	"pinelodge/internal/domain/shared/staydates"
)

func newStay(t *testing.T, checkIn, checkOut string) staydates.StayRange {
	t.Helper()
	ci, err := staydates.ParseDay(checkIn)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	co, err := staydates.ParseDay(checkOut)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	sr, err := staydates.New(ci, co)
	if err != nil {
		t.Fatalf("staydates.New: %v", err)
	}
	return sr
}

func newBooking(t *testing.T, ref, cabin, checkIn, checkOut string) *domainbooking.Booking {
	t.Helper()
	b, err := domainbooking.New(domainbooking.CreateParams{
		Reference: domainbooking.Reference(ref),
		CabinID:   domaincabins.CabinID(cabin),
		CabinName: cabin,
		Guest:     domainbooking.Guest{Name: "Guest", Email: "guest@example.com"},
		Stay:      newStay(t, checkIn, checkOut),
		Guests:    2,
		CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("booking.New: %v", err)
	}
	return b
}

func TestAdmitRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()

	first := newBooking(t, "REF00001", "the-pine", "2026-07-10", "2026-07-15")
	if err := repo.Admit(ctx, first); err != nil {
		t.Fatalf("first admit: %v", err)
	}

	// Starting on the first booking's checkout day is still a conflict.
	second := newBooking(t, "REF00002", "the-pine", "2026-07-15", "2026-07-20")
	if err := repo.Admit(ctx, second); !errors.Is(err, domainbooking.ErrDatesConflict) {
		t.Fatalf("expected ErrDatesConflict, got %v", err)
	}

	third := newBooking(t, "REF00003", "the-pine", "2026-07-16", "2026-07-20")
	if err := repo.Admit(ctx, third); err != nil {
		t.Fatalf("non-overlapping admit: %v", err)
	}
}

func TestAdmitIgnoresCancelledBookings(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()

	first := newBooking(t, "REF00001", "the-pine", "2026-07-10", "2026-07-15")
	if err := repo.Admit(ctx, first); err != nil {
		t.Fatalf("admit: %v", err)
	}
	first.Cancel(time.Now())
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := newBooking(t, "REF00002", "the-pine", "2026-07-12", "2026-07-14")
	if err := repo.Admit(ctx, second); err != nil {
		t.Fatalf("admit over cancelled booking: %v", err)
	}
}

func TestAdmitConcurrentOverlapAdmitsExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := newBooking(t, fmt.Sprintf("REF%05d", i), "the-pine", "2026-07-10", "2026-07-15")
			errs[i] = repo.Admit(ctx, b)
		}(i)
	}
	wg.Wait()

	admitted := 0
	for i, err := range errs {
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, domainbooking.ErrDatesConflict):
		default:
			t.Fatalf("racer %d: unexpected error %v", i, err)
		}
	}
	if admitted != 1 {
		t.Fatalf("admitted = %d, want exactly 1", admitted)
	}
}

func TestSaveUnknownReference(t *testing.T) {
	repo := NewBookingRepository()
	b := newBooking(t, "REF00001", "the-pine", "2026-07-10", "2026-07-12")
	if err := repo.Save(context.Background(), b); !errors.Is(err, domainbooking.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestByReferenceReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()
	b := newBooking(t, "REF00001", "the-pine", "2026-07-10", "2026-07-12")
	if err := repo.Admit(ctx, b); err != nil {
		t.Fatalf("admit: %v", err)
	}

	got, err := repo.ByReference(ctx, "REF00001")
	if err != nil {
		t.Fatalf("ByReference: %v", err)
	}
	got.SpecialRequests = "mutated"

	again, err := repo.ByReference(ctx, "REF00001")
	if err != nil {
		t.Fatalf("ByReference: %v", err)
	}
	if again.SpecialRequests == "mutated" {
		t.Fatal("repository handed out shared state")
	}
}

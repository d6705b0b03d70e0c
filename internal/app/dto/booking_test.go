package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	domainbooking "pinelodge/internal/domain/booking"
	"pinelodge/internal/domain/pricing"
	"pinelodge/internal/domain/shared/staydates"
)

func TestMapBookingDetailWireShape(t *testing.T) {
	stay, err := staydates.New(
		time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("staydates.New: %v", err)
	}
	b := &domainbooking.Booking{
		Reference: "AB12CD34",
		CabinID:   "the-pine",
		CabinName: "the-pine",
		Guest:     domainbooking.Guest{Name: "Maija Virtanen", Email: "maija@example.com"},
		Stay:      stay,
		Guests:    2,
		Price:     pricing.Breakdown{BaseCents: 112500, CleaningCents: 5000, ServiceFeeCents: 5625, TotalCents: 123125},
		Status:    domainbooking.StatusPending,
	}

	detail := MapBookingDetail(b)
	if detail.CheckIn != "2026-07-10" || detail.CheckOut != "2026-07-15" {
		t.Fatalf("dates = %s..%s", detail.CheckIn, detail.CheckOut)
	}
	if detail.Nights != 5 {
		t.Fatalf("nights = %d", detail.Nights)
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := string(raw)
	for _, key := range []string{`"bookingReference"`, `"cabinId"`, `"guestEmail"`, `"checkIn"`, `"paymentStatus"`} {
		if !strings.Contains(payload, key) {
			t.Fatalf("payload missing camelCase key %s: %s", key, payload)
		}
	}
	if strings.Contains(payload, "_") {
		t.Fatalf("payload leaked snake_case: %s", payload)
	}
}

func TestMapOccupiedDatesFormatsISO(t *testing.T) {
	days := []time.Time{
		time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC),
	}
	got := MapOccupiedDates("the-pine", days)
	if got.CabinName != "the-pine" {
		t.Fatalf("cabin name = %q", got.CabinName)
	}
	if len(got.BookedDates) != 2 || got.BookedDates[0] != "2026-07-10" {
		t.Fatalf("booked dates = %v", got.BookedDates)
	}

	empty := MapOccupiedDates("the-pine", nil)
	raw, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Clients iterate bookedDates; an absent key would break them.
	if !strings.Contains(string(raw), `"bookedDates":[]`) {
		t.Fatalf("empty calendar should serialize as [], got %s", raw)
	}
}

package staydates

import (
	"errors"
	"testing"
	"time"
)

func day(value string) time.Time {
	t, err := time.Parse(ISODate, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewRejectsInvertedRange(t *testing.T) {
	if _, err := New(day("2026-07-20"), day("2026-07-15")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := New(day("2026-07-15"), day("2026-07-15")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("zero-night stay should be rejected, got %v", err)
	}
}

func TestNewTruncatesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	checkIn := time.Date(2026, 7, 10, 14, 30, 0, 0, loc)
	checkOut := time.Date(2026, 7, 12, 11, 0, 0, 0, loc)
	sr, err := New(checkIn, checkOut)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := FormatDay(sr.CheckIn); got != "2026-07-10" {
		t.Fatalf("checkin = %s, want 2026-07-10", got)
	}
	if sr.CheckIn.Hour() != 0 || sr.CheckIn.Location() != time.UTC {
		t.Fatalf("checkin not truncated to midnight UTC: %v", sr.CheckIn)
	}
}

func TestNightsAndDays(t *testing.T) {
	sr, err := New(day("2026-07-10"), day("2026-07-13"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sr.Nights() != 3 {
		t.Fatalf("nights = %d, want 3", sr.Nights())
	}
	days := sr.Days()
	if len(days) != 4 {
		t.Fatalf("days = %d, want 4 (checkout inclusive)", len(days))
	}
	if FormatDay(days[0]) != "2026-07-10" || FormatDay(days[3]) != "2026-07-13" {
		t.Fatalf("unexpected day bounds: %s .. %s", FormatDay(days[0]), FormatDay(days[3]))
	}
}

func TestOverlapsIsInclusiveAtBoundaries(t *testing.T) {
	a, _ := New(day("2026-07-10"), day("2026-07-15"))

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"identical", "2026-07-10", "2026-07-15", true},
		{"contained", "2026-07-11", "2026-07-13", true},
		{"starts on checkout day", "2026-07-15", "2026-07-20", true},
		{"ends on checkin day", "2026-07-05", "2026-07-10", true},
		{"day after checkout", "2026-07-16", "2026-07-20", false},
		{"day before checkin", "2026-07-05", "2026-07-09", false},
	}
	for _, tc := range cases {
		b, err := New(day(tc.checkIn), day(tc.checkOut))
		if err != nil {
			t.Fatalf("%s: New: %v", tc.name, err)
		}
		if got := a.Overlaps(b); got != tc.want {
			t.Fatalf("%s: overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := b.Overlaps(a); got != tc.want {
			t.Fatalf("%s: overlaps not symmetric", tc.name)
		}
	}
}

func TestOccupiesDay(t *testing.T) {
	sr, _ := New(day("2026-07-10"), day("2026-07-12"))
	if !sr.OccupiesDay(day("2026-07-12")) {
		t.Fatal("checkout day should count as occupied")
	}
	if sr.OccupiesDay(day("2026-07-13")) {
		t.Fatal("day after checkout should be free")
	}
}

func TestParseDay(t *testing.T) {
	if _, err := ParseDay("15-07-2026"); !errors.Is(err, ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}
	got, err := ParseDay("2026-07-15")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if FormatDay(got) != "2026-07-15" {
		t.Fatalf("round trip = %s", FormatDay(got))
	}
}

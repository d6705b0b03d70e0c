package pricing

import (
	"errors"
	"testing"
)

func TestQuote(t *testing.T) {
	b, err := Quote(QuoteParams{NightlyCents: 25000, CleaningCents: 5000, ServiceFeeBps: 500, Nights: 4})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if b.BaseCents != 100000 {
		t.Fatalf("base = %d, want 100000", b.BaseCents)
	}
	if b.ServiceFeeCents != 5000 {
		t.Fatalf("service fee = %d, want 5000", b.ServiceFeeCents)
	}
	if b.TotalCents != 110000 {
		t.Fatalf("total = %d, want 110000", b.TotalCents)
	}
}

func TestQuoteValidation(t *testing.T) {
	if _, err := Quote(QuoteParams{NightlyCents: 100, Nights: 0}); !errors.Is(err, ErrInvalidNights) {
		t.Fatalf("expected ErrInvalidNights, got %v", err)
	}
	if _, err := Quote(QuoteParams{NightlyCents: -1, Nights: 2}); !errors.Is(err, ErrNegativeComponent) {
		t.Fatalf("expected ErrNegativeComponent, got %v", err)
	}
}

func TestApplyDiscountClampsTotal(t *testing.T) {
	b, err := Quote(QuoteParams{NightlyCents: 1000, Nights: 2})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	b.ApplyDiscount(500)
	if b.TotalCents != 1500 {
		t.Fatalf("total = %d, want 1500", b.TotalCents)
	}
	b.ApplyDiscount(99999)
	if b.TotalCents != 0 {
		t.Fatalf("total should clamp at zero, got %d", b.TotalCents)
	}
	b.ApplyDiscount(-10)
	if b.DiscountCents != 0 || b.TotalCents != 2000 {
		t.Fatalf("negative discount should be dropped, got %+v", b)
	}
}

func TestClearDiscount(t *testing.T) {
	b, err := Quote(QuoteParams{NightlyCents: 1000, Nights: 3})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	b.ApplyDiscount(300)
	b.ClearDiscount()
	if b.DiscountCents != 0 || b.TotalCents != 3000 {
		t.Fatalf("clear discount left %+v", b)
	}
}

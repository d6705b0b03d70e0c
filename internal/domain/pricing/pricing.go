package pricing

import "errors"

var (
	ErrInvalidNights     = errors.New("pricing: nights must be positive")
	ErrNegativeComponent = errors.New("pricing: fee components cannot be negative")
)

// Breakdown keeps every price component in integer cents to avoid
// floating point drift.
type Breakdown struct {
	Nights          int
	NightlyCents    int64
	BaseCents       int64
	CleaningCents   int64
	ServiceFeeCents int64
	DiscountCents   int64
	TotalCents      int64
}

// QuoteParams carries the rate card a quote is computed from. The service
// fee is expressed in basis points of the base price.
type QuoteParams struct {
	NightlyCents  int64
	CleaningCents int64
	ServiceFeeBps int64
	Nights        int
}

func Quote(params QuoteParams) (Breakdown, error) {
	if params.Nights <= 0 {
		return Breakdown{}, ErrInvalidNights
	}
	if params.NightlyCents < 0 || params.CleaningCents < 0 || params.ServiceFeeBps < 0 {
		return Breakdown{}, ErrNegativeComponent
	}
	b := Breakdown{
		Nights:        params.Nights,
		NightlyCents:  params.NightlyCents,
		BaseCents:     params.NightlyCents * int64(params.Nights),
		CleaningCents: params.CleaningCents,
	}
	b.ServiceFeeCents = b.BaseCents * params.ServiceFeeBps / 10000
	b.recalculate()
	return b, nil
}

// ApplyDiscount replaces the discount component and recomputes the total.
// The discount never pushes the total below zero.
func (b *Breakdown) ApplyDiscount(cents int64) {
	if cents < 0 {
		cents = 0
	}
	b.DiscountCents = cents
	b.recalculate()
}

// ClearDiscount drops a previously applied discount, used when a promo
// redemption loses the usage race after the quote was computed.
func (b *Breakdown) ClearDiscount() {
	b.DiscountCents = 0
	b.recalculate()
}

func (b *Breakdown) recalculate() {
	total := b.BaseCents + b.CleaningCents + b.ServiceFeeCents - b.DiscountCents
	if total < 0 {
		total = 0
	}
	b.TotalCents = total
}

package promo

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound       = errors.New("promo: code not found")
	ErrUsageExhausted = errors.New("promo: usage limit reached")
	ErrInvalidPromo   = errors.New("promo: invalid promo definition")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Reason explains why validation rejected a code. Callers surface it as a
// business outcome, never as a transport error.
type Reason string

const (
	ReasonNotFound     Reason = "not found"
	ReasonInactive     Reason = "inactive"
	ReasonExpired      Reason = "expired"
	ReasonLimitReached Reason = "limit reached"
)

// PromoCode is the stored promotional discount. CurrentUses never exceeds
// MaxUses when the latter is set; the repositories enforce that under
// concurrent redemption.
type PromoCode struct {
	Code          string
	Description   string
	DiscountType  DiscountType
	DiscountValue int64
	Active        bool
	ValidUntil    *time.Time
	MaxUses       *int64
	CurrentUses   int64
}

// Canonical normalizes a code the same way booking references are
// normalized, so validation is casing-insensitive end to end.
func Canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (p *PromoCode) Validate() error {
	if Canonical(p.Code) == "" {
		return ErrInvalidPromo
	}
	switch p.DiscountType {
	case DiscountPercentage:
		if p.DiscountValue < 0 || p.DiscountValue > 100 {
			return ErrInvalidPromo
		}
	case DiscountFixed:
		if p.DiscountValue < 0 {
			return ErrInvalidPromo
		}
	default:
		return ErrInvalidPromo
	}
	return nil
}

// Offer is the public projection of a valid promo. Usage counters and
// limits stay internal.
type Offer struct {
	Code          string
	Description   string
	DiscountType  DiscountType
	DiscountValue int64
}

// Verdict is the outcome of validating a code.
type Verdict struct {
	Valid  bool
	Reason Reason
	Offer  *Offer
}

func Rejected(reason Reason) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

// Evaluate applies the validation rules in order, short-circuiting on the
// first failure: inactive, expired, limit reached. Expiry is strict —
// a code whose ValidUntil equals now is still valid. Evaluation never
// mutates the promo; redemption is a separate repository operation.
func (p *PromoCode) Evaluate(now time.Time) Verdict {
	if !p.Active {
		return Rejected(ReasonInactive)
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return Rejected(ReasonExpired)
	}
	if p.MaxUses != nil && p.CurrentUses >= *p.MaxUses {
		return Rejected(ReasonLimitReached)
	}
	return Verdict{Valid: true, Offer: &Offer{
		Code:          p.Code,
		Description:   p.Description,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
	}}
}

// DiscountCents computes the discount against a base amount, clamped so a
// fixed discount never exceeds the base.
func (p *PromoCode) DiscountCents(baseCents int64) int64 {
	var discount int64
	switch p.DiscountType {
	case DiscountPercentage:
		discount = baseCents * p.DiscountValue / 100
	case DiscountFixed:
		discount = p.DiscountValue
	}
	if discount > baseCents {
		discount = baseCents
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// Repository persists promo codes. Redeem consumes one use as an atomic
// compare-and-increment: it fails with ErrUsageExhausted instead of ever
// letting CurrentUses overshoot MaxUses.
type Repository interface {
	ByCode(ctx context.Context, code string) (*PromoCode, error)
	Redeem(ctx context.Context, code string) error
	Save(ctx context.Context, promo *PromoCode) error
}

package cabins

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrCabinNotFound = errors.New("cabins: cabin not found")
	ErrInvalidCabin  = errors.New("cabins: invalid cabin definition")
)

type CabinID string

// Cabin is one bookable physical unit. The inventory is small and
// effectively static; cabins are addressed by their URL-safe name.
type Cabin struct {
	ID                CabinID
	Name              string
	MaxCapacity       int
	RegularPriceCents int64
	DiscountCents     int64
	Description       string
	ImageURL          string
}

// NightlyRateCents is the effective per-night rate after the standing
// cabin discount.
func (c Cabin) NightlyRateCents() int64 {
	rate := c.RegularPriceCents - c.DiscountCents
	if rate < 0 {
		return 0
	}
	return rate
}

func (c Cabin) Validate() error {
	if c.ID == "" || c.Name == "" {
		return ErrInvalidCabin
	}
	if c.MaxCapacity <= 0 || c.RegularPriceCents < 0 || c.DiscountCents < 0 {
		return ErrInvalidCabin
	}
	return nil
}

// CanonicalName normalizes a cabin name for lookups.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type Repository interface {
	ByName(ctx context.Context, name string) (*Cabin, error)
	List(ctx context.Context) ([]*Cabin, error)
	Save(ctx context.Context, cabin *Cabin) error
}

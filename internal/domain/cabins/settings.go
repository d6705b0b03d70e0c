package cabins

import (
	"context"
	"errors"
)

var ErrInvalidSettings = errors.New("cabins: invalid settings")

// Settings are the site-wide booking rules an admin can edit.
type Settings struct {
	MinBookingNights    int
	MaxBookingNights    int
	MaxGuestsPerBooking int
	BreakfastPriceCents int64
	CleaningFeeCents    int64
	ServiceFeeBps       int64
}

func DefaultSettings() Settings {
	return Settings{
		MinBookingNights:    1,
		MaxBookingNights:    90,
		MaxGuestsPerBooking: 10,
		BreakfastPriceCents: 1500,
		CleaningFeeCents:    5000,
		ServiceFeeBps:       500,
	}
}

func (s Settings) Validate() error {
	if s.MinBookingNights <= 0 || s.MaxBookingNights < s.MinBookingNights {
		return ErrInvalidSettings
	}
	if s.MaxGuestsPerBooking <= 0 {
		return ErrInvalidSettings
	}
	if s.BreakfastPriceCents < 0 || s.CleaningFeeCents < 0 || s.ServiceFeeBps < 0 {
		return ErrInvalidSettings
	}
	return nil
}

type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

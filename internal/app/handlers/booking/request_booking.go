package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/outbox"
	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
	domainpricing "pinelodge/internal/domain/pricing"
	domainpromo "pinelodge/internal/domain/promo"
	"pinelodge/internal/domain/shared/events"
	"pinelodge/internal/domain/shared/staydates"
)

const requestBookingKey = "booking.request"

// ErrPromoRejected is returned when a booking names a promo code that
// fails validation; the reason is attached to the error message.
var ErrPromoRejected = errors.New("booking: promo code rejected")

type RequestBookingCommand struct {
	CabinName  string
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	PromoCode  string
}

func (c RequestBookingCommand) Key() string { return requestBookingKey }

type RequestBookingHandler struct {
	Bookings domainbooking.Repository
	Cabins   domaincabins.Repository
	Settings domaincabins.SettingsRepository
	Promos   domainpromo.Repository
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
	Now      func() time.Time
}

func (h *RequestBookingHandler) Handle(ctx context.Context, cmd RequestBookingCommand) (dto.BookingDetail, error) {
	now := h.now()

	stay, err := staydates.New(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return dto.BookingDetail{}, err
	}

	cabin, err := h.Cabins.ByName(ctx, cmd.CabinName)
	if err != nil {
		return dto.BookingDetail{}, err
	}
	settings, err := h.Settings.Get(ctx)
	if err != nil {
		return dto.BookingDetail{}, err
	}

	if err := domainbooking.ValidateStayPolicy(stay, now, settings.MinBookingNights, settings.MaxBookingNights); err != nil {
		return dto.BookingDetail{}, err
	}
	if err := domainbooking.ValidateGuestCount(cmd.Guests, cabin.MaxCapacity, settings.MaxGuestsPerBooking); err != nil {
		return dto.BookingDetail{}, err
	}

	price, err := domainpricing.Quote(domainpricing.QuoteParams{
		NightlyCents:  cabin.NightlyRateCents(),
		CleaningCents: settings.CleaningFeeCents,
		ServiceFeeBps: settings.ServiceFeeBps,
		Nights:        stay.Nights(),
	})
	if err != nil {
		return dto.BookingDetail{}, err
	}

	promoCode := domainpromo.Canonical(cmd.PromoCode)
	var appliedPromo *domainpromo.PromoCode
	if promoCode != "" {
		p, err := h.Promos.ByCode(ctx, promoCode)
		if errors.Is(err, domainpromo.ErrNotFound) {
			return dto.BookingDetail{}, fmt.Errorf("%w: %s", ErrPromoRejected, domainpromo.ReasonNotFound)
		}
		if err != nil {
			return dto.BookingDetail{}, err
		}
		if verdict := p.Evaluate(now); !verdict.Valid {
			return dto.BookingDetail{}, fmt.Errorf("%w: %s", ErrPromoRejected, verdict.Reason)
		}
		price.ApplyDiscount(p.DiscountCents(price.BaseCents))
		appliedPromo = p
	}

	b, err := domainbooking.New(domainbooking.CreateParams{
		Reference: generateReference(),
		CabinID:   cabin.ID,
		CabinName: cabin.Name,
		Guest: domainbooking.Guest{
			Name:  cmd.GuestName,
			Email: strings.ToLower(strings.TrimSpace(cmd.GuestEmail)),
			Phone: cmd.GuestPhone,
		},
		Stay:      stay,
		Guests:    cmd.Guests,
		Price:     price,
		PromoCode: promoCode,
		CreatedAt: now,
	})
	if err != nil {
		return dto.BookingDetail{}, err
	}

	if err := h.Bookings.Admit(ctx, b); err != nil {
		return dto.BookingDetail{}, err
	}

	// Redemption happens only after the booking is committed. Losing the
	// usage race here keeps the booking but drops the discount; any other
	// redemption failure is a storage fault and must surface.
	var redeemed bool
	if appliedPromo != nil {
		switch err := h.Promos.Redeem(ctx, promoCode); {
		case err == nil:
			redeemed = true
		case errors.Is(err, domainpromo.ErrUsageExhausted), errors.Is(err, domainpromo.ErrNotFound):
			b.Price.ClearDiscount()
			b.PromoCode = ""
			if saveErr := h.Bookings.Save(ctx, b); saveErr != nil {
				return dto.BookingDetail{}, saveErr
			}
		default:
			return dto.BookingDetail{}, fmt.Errorf("redeem promo %s: %w", promoCode, err)
		}
	}

	pending := b.PendingEvents()
	b.ClearEvents()
	if redeemed {
		pending = append(pending, events.BaseEvent{Name: "promo.redeemed", Aggregate: promoCode, Time: now})
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, pending); err != nil {
		return dto.BookingDetail{}, err
	}

	return dto.MapBookingDetail(b), nil
}

func (h *RequestBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

func generateReference() domainbooking.Reference {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return domainbooking.CanonicalReference(raw[:8])
}

var _ commands.Handler[RequestBookingCommand, dto.BookingDetail] = (*RequestBookingHandler)(nil)

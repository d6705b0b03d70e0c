package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"pinelodge/internal/domain/cabins"
	"pinelodge/internal/domain/pricing"
	"pinelodge/internal/domain/shared/events"
	"pinelodge/internal/domain/shared/staydates"
)

var (
	ErrNotFound       = errors.New("booking: not found")
	ErrDatesConflict  = errors.New("booking: requested dates conflict with an existing booking")
	ErrInvalidGuests  = errors.New("booking: guests count must be positive")
	ErrGuestRequired  = errors.New("booking: guest email required")
	ErrEmptyReference = errors.New("booking: reference required")
	ErrEmptyMessage   = errors.New("booking: message required")
)

// Reference is the human-shareable booking identifier. References are
// case-insensitive and stored upper-case.
type Reference string

func CanonicalReference(raw string) Reference {
	return Reference(strings.ToUpper(strings.TrimSpace(raw)))
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type Guest struct {
	Name  string
	Email string
	Phone string
}

// Booking is a reservation of one cabin for a contiguous stay.
//
// SpecialRequests holds only the latest guest message; overwriting it is
// the current product behavior. An append-only message log keyed to the
// booking would be the safer model if threading is ever wanted.
type Booking struct {
	Reference       Reference
	CabinID         cabins.CabinID
	CabinName       string
	Guest           Guest
	Stay            staydates.StayRange
	Guests          int
	Price           pricing.Breakdown
	Status          Status
	PaymentStatus   string
	SpecialRequests string
	PromoCode       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	events.EventRecorder
}

type CreateParams struct {
	Reference     Reference
	CabinID       cabins.CabinID
	CabinName     string
	Guest         Guest
	Stay          staydates.StayRange
	Guests        int
	Price         pricing.Breakdown
	PromoCode     string
	PaymentStatus string
	CreatedAt     time.Time
}

func New(params CreateParams) (*Booking, error) {
	if params.Reference == "" {
		return nil, ErrEmptyReference
	}
	if params.Guests <= 0 {
		return nil, ErrInvalidGuests
	}
	if strings.TrimSpace(params.Guest.Email) == "" {
		return nil, ErrGuestRequired
	}
	if err := params.Stay.Validate(); err != nil {
		return nil, err
	}
	now := params.CreatedAt.UTC()
	paymentStatus := params.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "unpaid"
	}
	b := &Booking{
		Reference:     CanonicalReference(string(params.Reference)),
		CabinID:       params.CabinID,
		CabinName:     params.CabinName,
		Guest:         params.Guest,
		Stay:          params.Stay,
		Guests:        params.Guests,
		Price:         params.Price,
		Status:        StatusPending,
		PaymentStatus: paymentStatus,
		PromoCode:     params.PromoCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	b.Record(BookingAdmitted{
		Reference: b.Reference,
		CabinID:   b.CabinID,
		CheckIn:   b.Stay.CheckIn,
		CheckOut:  b.Stay.CheckOut,
		Total:     b.Price.TotalCents,
		At:        now,
	})
	return b, nil
}

// Blocks reports whether the booking keeps its stay days occupied.
// Cancelled and completed bookings never block availability.
func (b *Booking) Blocks() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Cancel moves the booking to its terminal state. Cancelling an already
// cancelled booking is a no-op success, not an error.
func (b *Booking) Cancel(now time.Time) {
	if b.Status == StatusCancelled {
		return
	}
	b.Status = StatusCancelled
	b.UpdatedAt = now.UTC()
	b.Record(BookingCancelled{Reference: b.Reference, CabinID: b.CabinID, At: b.UpdatedAt})
}

// AttachGuestMessage overwrites the guest's special-requests note,
// last write wins.
func (b *Booking) AttachGuestMessage(message string, now time.Time) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	b.SpecialRequests = message
	b.UpdatedAt = now.UTC()
	return nil
}

// Repository is the narrow persistence seam for bookings. Admit must be
// atomic with respect to availability: two overlapping admissions for the
// same cabin cannot both succeed, the loser sees ErrDatesConflict.
type Repository interface {
	ByReference(ctx context.Context, ref Reference) (*Booking, error)
	Admit(ctx context.Context, b *Booking) error
	Save(ctx context.Context, b *Booking) error
	ListByGuestEmail(ctx context.Context, email string) ([]*Booking, error)
	ListByCabin(ctx context.Context, cabinID cabins.CabinID) ([]*Booking, error)
}

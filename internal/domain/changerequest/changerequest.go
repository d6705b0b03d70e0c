package changerequest

import (
	"context"
	"errors"
	"time"

	"pinelodge/internal/domain/booking"
	"pinelodge/internal/domain/shared/staydates"
)

var ErrInvalidRequest = errors.New("changerequest: invalid request")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ChangeRequest is a guest's non-binding proposal to move a booking's
// dates. It references the booking by value only and never mutates it;
// several requests may coexist for one booking. Adjudication happens in
// an external review flow.
type ChangeRequest struct {
	ID               string
	BookingReference booking.Reference
	OriginalStay     staydates.StayRange
	RequestedStay    staydates.StayRange
	Message          string
	GuestName        string
	GuestEmail       string
	CabinName        string
	Status           Status
	CreatedAt        time.Time
}

type SubmitParams struct {
	ID            string
	Booking       *booking.Booking
	RequestedStay staydates.StayRange
	Message       string
	CreatedAt     time.Time
}

// Submit builds a pending request, snapshotting the booking's current
// dates into the Original fields at submission time.
func Submit(params SubmitParams) (*ChangeRequest, error) {
	if params.ID == "" || params.Booking == nil {
		return nil, ErrInvalidRequest
	}
	if err := params.RequestedStay.Validate(); err != nil {
		return nil, err
	}
	return &ChangeRequest{
		ID:               params.ID,
		BookingReference: params.Booking.Reference,
		OriginalStay:     params.Booking.Stay,
		RequestedStay:    params.RequestedStay,
		Message:          params.Message,
		GuestName:        params.Booking.Guest.Name,
		GuestEmail:       params.Booking.Guest.Email,
		CabinName:        params.Booking.CabinName,
		Status:           StatusPending,
		CreatedAt:        params.CreatedAt.UTC(),
	}, nil
}

type Repository interface {
	Insert(ctx context.Context, request *ChangeRequest) error
	ListByReference(ctx context.Context, ref booking.Reference) ([]*ChangeRequest, error)
}

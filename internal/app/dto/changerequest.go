package dto

import (
	"time"

	domainchange "pinelodge/internal/domain/changerequest"
	"pinelodge/internal/domain/shared/staydates"
)

type ChangeRequestDetail struct {
	ID                string    `json:"id"`
	BookingReference  string    `json:"bookingReference"`
	OriginalCheckIn   string    `json:"originalCheckIn"`
	OriginalCheckOut  string    `json:"originalCheckOut"`
	RequestedCheckIn  string    `json:"requestedCheckIn"`
	RequestedCheckOut string    `json:"requestedCheckOut"`
	Message           string    `json:"message,omitempty"`
	GuestName         string    `json:"guestName,omitempty"`
	CabinName         string    `json:"cabinName,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ChangeRequestCollection struct {
	Items []ChangeRequestDetail `json:"items"`
}

func MapChangeRequestCollection(requests []*domainchange.ChangeRequest) ChangeRequestCollection {
	items := make([]ChangeRequestDetail, 0, len(requests))
	for _, cr := range requests {
		items = append(items, MapChangeRequest(cr))
	}
	return ChangeRequestCollection{Items: items}
}

func MapChangeRequest(cr *domainchange.ChangeRequest) ChangeRequestDetail {
	return ChangeRequestDetail{
		ID:                cr.ID,
		BookingReference:  string(cr.BookingReference),
		OriginalCheckIn:   staydates.FormatDay(cr.OriginalStay.CheckIn),
		OriginalCheckOut:  staydates.FormatDay(cr.OriginalStay.CheckOut),
		RequestedCheckIn:  staydates.FormatDay(cr.RequestedStay.CheckIn),
		RequestedCheckOut: staydates.FormatDay(cr.RequestedStay.CheckOut),
		Message:           cr.Message,
		GuestName:         cr.GuestName,
		CabinName:         cr.CabinName,
		Status:            string(cr.Status),
		CreatedAt:         cr.CreatedAt,
	}
}

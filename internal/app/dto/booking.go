// Package dto is the single mapping layer between the engine's internal
// representation (snake_case persistence, domain types) and the public
// camelCase response shapes. No handler builds response fields by hand.
package dto

import (
	"time"

	domainbooking "pinelodge/internal/domain/booking"
	"pinelodge/internal/domain/shared/staydates"
)

type PriceBreakdown struct {
	BasePrice   int64 `json:"basePrice"`
	CleaningFee int64 `json:"cleaningFee"`
	ServiceFee  int64 `json:"serviceFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

type BookingDetail struct {
	BookingReference string         `json:"bookingReference"`
	CabinID          string         `json:"cabinId"`
	CabinName        string         `json:"cabinName"`
	GuestName        string         `json:"guestName"`
	GuestEmail       string         `json:"guestEmail"`
	GuestPhone       string         `json:"guestPhone,omitempty"`
	CheckIn          string         `json:"checkIn"`
	CheckOut         string         `json:"checkOut"`
	Nights           int            `json:"nights"`
	Guests           int            `json:"guests"`
	Price            PriceBreakdown `json:"price"`
	Status           string         `json:"status"`
	PaymentStatus    string         `json:"paymentStatus"`
	SpecialRequests  string         `json:"specialRequests,omitempty"`
	PromoCode        string         `json:"promoCode,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

type BookingCollection struct {
	Items []BookingDetail `json:"items"`
}

func MapBookingDetail(b *domainbooking.Booking) BookingDetail {
	return BookingDetail{
		BookingReference: string(b.Reference),
		CabinID:          string(b.CabinID),
		CabinName:        b.CabinName,
		GuestName:        b.Guest.Name,
		GuestEmail:       b.Guest.Email,
		GuestPhone:       b.Guest.Phone,
		CheckIn:          staydates.FormatDay(b.Stay.CheckIn),
		CheckOut:         staydates.FormatDay(b.Stay.CheckOut),
		Nights:           b.Stay.Nights(),
		Guests:           b.Guests,
		Price: PriceBreakdown{
			BasePrice:   b.Price.BaseCents,
			CleaningFee: b.Price.CleaningCents,
			ServiceFee:  b.Price.ServiceFeeCents,
			Discount:    b.Price.DiscountCents,
			Total:       b.Price.TotalCents,
		},
		Status:          string(b.Status),
		PaymentStatus:   b.PaymentStatus,
		SpecialRequests: b.SpecialRequests,
		PromoCode:       b.PromoCode,
		CreatedAt:       b.CreatedAt,
	}
}

func MapBookingCollection(bookings []*domainbooking.Booking) BookingCollection {
	items := make([]BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, MapBookingDetail(b))
	}
	return BookingCollection{Items: items}
}

// OccupiedDates is the public shape of a cabin's occupancy calendar.
type OccupiedDates struct {
	CabinName   string   `json:"cabinName"`
	BookedDates []string `json:"bookedDates"`
}

func MapOccupiedDates(cabinName string, days []time.Time) OccupiedDates {
	dates := make([]string, 0, len(days))
	for _, day := range days {
		dates = append(dates, staydates.FormatDay(day))
	}
	return OccupiedDates{CabinName: cabinName, BookedDates: dates}
}

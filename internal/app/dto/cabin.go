package dto

import domaincabins "pinelodge/internal/domain/cabins"

type Cabin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MaxCapacity  int    `json:"maxCapacity"`
	RegularPrice int64  `json:"regularPrice"`
	Discount     int64  `json:"discount"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

type CabinCollection struct {
	Items []Cabin `json:"items"`
}

type Settings struct {
	MinBookingNights    int   `json:"minBookingNights"`
	MaxBookingNights    int   `json:"maxBookingNights"`
	MaxGuestsPerBooking int   `json:"maxGuestsPerBooking"`
	BreakfastPrice      int64 `json:"breakfastPrice"`
	CleaningFee         int64 `json:"cleaningFee"`
	ServiceFeeBps       int64 `json:"serviceFeeBps"`
}

func MapCabin(c *domaincabins.Cabin) Cabin {
	return Cabin{
		ID:           string(c.ID),
		Name:         c.Name,
		MaxCapacity:  c.MaxCapacity,
		RegularPrice: c.RegularPriceCents,
		Discount:     c.DiscountCents,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
	}
}

func MapCabinCollection(cabins []*domaincabins.Cabin) CabinCollection {
	items := make([]Cabin, 0, len(cabins))
	for _, c := range cabins {
		items = append(items, MapCabin(c))
	}
	return CabinCollection{Items: items}
}

func MapSettings(s domaincabins.Settings) Settings {
	return Settings{
		MinBookingNights:    s.MinBookingNights,
		MaxBookingNights:    s.MaxBookingNights,
		MaxGuestsPerBooking: s.MaxGuestsPerBooking,
		BreakfastPrice:      s.BreakfastPriceCents,
		CleaningFee:         s.CleaningFeeCents,
		ServiceFeeBps:       s.ServiceFeeBps,
	}
}

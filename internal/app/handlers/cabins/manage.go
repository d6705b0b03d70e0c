package cabins

import (
	"context"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/queries"
	domaincabins "pinelodge/internal/domain/cabins"
)

const (
	listCabinsKey     = "cabins.list"
	updateCabinKey    = "cabins.update"
	getSettingsKey    = "cabins.settings.get"
	updateSettingsKey = "cabins.settings.update"
)

type ListCabinsQuery struct{}

func (q ListCabinsQuery) Key() string { return listCabinsKey }

type ListCabinsHandler struct {
	Cabins domaincabins.Repository
}

func (h *ListCabinsHandler) Handle(ctx context.Context, _ ListCabinsQuery) (dto.CabinCollection, error) {
	items, err := h.Cabins.List(ctx)
	if err != nil {
		return dto.CabinCollection{}, err
	}
	return dto.MapCabinCollection(items), nil
}

type UpdateCabinCommand struct {
	Name         string
	MaxCapacity  int
	RegularPrice int64
	Discount     int64
	Description  string
	ImageURL     string
}

func (c UpdateCabinCommand) Key() string { return updateCabinKey }

type UpdateCabinHandler struct {
	Cabins domaincabins.Repository
}

func (h *UpdateCabinHandler) Handle(ctx context.Context, cmd UpdateCabinCommand) (dto.Cabin, error) {
	cabin, err := h.Cabins.ByName(ctx, cmd.Name)
	if err != nil {
		return dto.Cabin{}, err
	}
	cabin.MaxCapacity = cmd.MaxCapacity
	cabin.RegularPriceCents = cmd.RegularPrice
	cabin.DiscountCents = cmd.Discount
	if cmd.Description != "" {
		cabin.Description = cmd.Description
	}
	if cmd.ImageURL != "" {
		cabin.ImageURL = cmd.ImageURL
	}
	if err := cabin.Validate(); err != nil {
		return dto.Cabin{}, err
	}
	if err := h.Cabins.Save(ctx, cabin); err != nil {
		return dto.Cabin{}, err
	}
	return dto.MapCabin(cabin), nil
}

type GetSettingsQuery struct{}

func (q GetSettingsQuery) Key() string { return getSettingsKey }

type GetSettingsHandler struct {
	Settings domaincabins.SettingsRepository
}

func (h *GetSettingsHandler) Handle(ctx context.Context, _ GetSettingsQuery) (dto.Settings, error) {
	settings, err := h.Settings.Get(ctx)
	if err != nil {
		return dto.Settings{}, err
	}
	return dto.MapSettings(settings), nil
}

type UpdateSettingsCommand struct {
	MinBookingNights    int
	MaxBookingNights    int
	MaxGuestsPerBooking int
	BreakfastPrice      int64
	CleaningFee         int64
	ServiceFeeBps       int64
}

func (c UpdateSettingsCommand) Key() string { return updateSettingsKey }

type UpdateSettingsHandler struct {
	Settings domaincabins.SettingsRepository
}

func (h *UpdateSettingsHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) (dto.Settings, error) {
	settings := domaincabins.Settings{
		MinBookingNights:    cmd.MinBookingNights,
		MaxBookingNights:    cmd.MaxBookingNights,
		MaxGuestsPerBooking: cmd.MaxGuestsPerBooking,
		BreakfastPriceCents: cmd.BreakfastPrice,
		CleaningFeeCents:    cmd.CleaningFee,
		ServiceFeeBps:       cmd.ServiceFeeBps,
	}
	if err := settings.Validate(); err != nil {
		return dto.Settings{}, err
	}
	if err := h.Settings.Save(ctx, settings); err != nil {
		return dto.Settings{}, err
	}
	return dto.MapSettings(settings), nil
}

var (
	_ queries.Handler[ListCabinsQuery, dto.CabinCollection] = (*ListCabinsHandler)(nil)
	_ commands.Handler[UpdateCabinCommand, dto.Cabin]       = (*UpdateCabinHandler)(nil)
	_ queries.Handler[GetSettingsQuery, dto.Settings]       = (*GetSettingsHandler)(nil)
	_ commands.Handler[UpdateSettingsCommand, dto.Settings] = (*UpdateSettingsHandler)(nil)
)

package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	cabinsapp "pinelodge/internal/app/handlers/cabins"
	"pinelodge/internal/app/queries"
)

type CabinHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
	Logger   *slog.Logger
}

func (h CabinHandler) List(c *gin.Context) {
	result, err := queries.Ask[cabinsapp.ListCabinsQuery, dto.CabinCollection](c.Request.Context(), h.Queries, cabinsapp.ListCabinsQuery{})
	if err != nil {
		respondError(c, h.Logger, "cabins.list", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type updateCabinRequest struct {
	MaxCapacity  int    `json:"maxCapacity"`
	RegularPrice int64  `json:"regularPrice"`
	Discount     int64  `json:"discount"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
}

func (h CabinHandler) Update(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cabin name required"})
		return
	}
	var req updateCabinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := cabinsapp.UpdateCabinCommand{
		Name:         name,
		MaxCapacity:  req.MaxCapacity,
		RegularPrice: req.RegularPrice,
		Discount:     req.Discount,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	}
	result, err := commands.Dispatch[cabinsapp.UpdateCabinCommand, dto.Cabin](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, h.Logger, "cabins.update", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h CabinHandler) GetSettings(c *gin.Context) {
	result, err := queries.Ask[cabinsapp.GetSettingsQuery, dto.Settings](c.Request.Context(), h.Queries, cabinsapp.GetSettingsQuery{})
	if err != nil {
		respondError(c, h.Logger, "settings.get", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type updateSettingsRequest struct {
	MinBookingNights    int   `json:"minBookingNights"`
	MaxBookingNights    int   `json:"maxBookingNights"`
	MaxGuestsPerBooking int   `json:"maxGuestsPerBooking"`
	BreakfastPrice      int64 `json:"breakfastPrice"`
	CleaningFee         int64 `json:"cleaningFee"`
	ServiceFeeBps       int64 `json:"serviceFeeBps"`
}

func (h CabinHandler) UpdateSettings(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := cabinsapp.UpdateSettingsCommand{
		MinBookingNights:    req.MinBookingNights,
		MaxBookingNights:    req.MaxBookingNights,
		MaxGuestsPerBooking: req.MaxGuestsPerBooking,
		BreakfastPrice:      req.BreakfastPrice,
		CleaningFee:         req.CleaningFee,
		ServiceFeeBps:       req.ServiceFeeBps,
	}
	result, err := commands.Dispatch[cabinsapp.UpdateSettingsCommand, dto.Settings](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, h.Logger, "settings.update", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	bookingapp "pinelodge/internal/app/handlers/booking"
	"pinelodge/internal/app/queries"
	"pinelodge/internal/domain/shared/staydates"
)

type BookingHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
	Logger   *slog.Logger
}

type createBookingRequest struct {
	CabinName  string `json:"cabinName"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	PromoCode  string `json:"promoCode"`
}

func (h BookingHandler) Create(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checkIn, err := staydates.ParseDay(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn must be formatted YYYY-MM-DD"})
		return
	}
	checkOut, err := staydates.ParseDay(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOut must be formatted YYYY-MM-DD"})
		return
	}
	cmd := bookingapp.RequestBookingCommand{
		CabinName:  req.CabinName,
		GuestName:  req.GuestName,
		GuestEmail: user.Email,
		GuestPhone: req.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		PromoCode:  req.PromoCode,
	}
	result, err := commands.Dispatch[bookingapp.RequestBookingCommand, dto.BookingDetail](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, h.Logger, "booking.create", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h BookingHandler) Lookup(c *gin.Context) {
	ref := c.Param("reference")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking reference required"})
		return
	}
	query := bookingapp.LookupBookingQuery{Reference: ref}
	result, err := queries.Ask[bookingapp.LookupBookingQuery, dto.BookingDetail](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, h.Logger, "booking.lookup", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h BookingHandler) Cancel(c *gin.Context) {
	ref := c.Param("reference")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking reference required"})
		return
	}
	cmd := bookingapp.CancelBookingCommand{Reference: ref}
	result, err := commands.Dispatch[bookingapp.CancelBookingCommand, dto.BookingDetail](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, h.Logger, "booking.cancel", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": result})
}

type attachMessageRequest struct {
	Message string `json:"message"`
}

func (h BookingHandler) AttachMessage(c *gin.Context) {
	ref := c.Param("reference")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking reference required"})
		return
	}
	var req attachMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := bookingapp.AttachGuestMessageCommand{Reference: ref, Message: req.Message}
	if _, err := commands.Dispatch[bookingapp.AttachGuestMessageCommand, dto.BookingDetail](c.Request.Context(), h.Commands, cmd); err != nil {
		respondError(c, h.Logger, "booking.attach_message", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h BookingHandler) MyBookings(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	query := bookingapp.ListGuestBookingsQuery{GuestEmail: user.Email}
	result, err := queries.Ask[bookingapp.ListGuestBookingsQuery, dto.BookingCollection](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, h.Logger, "booking.list_guest", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

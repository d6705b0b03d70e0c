package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/app/dto"
	availabilityapp "pinelodge/internal/app/handlers/availability"
	"pinelodge/internal/app/queries"
)

type AvailabilityHandler struct {
	Queries queries.Bus
	Logger  *slog.Logger
}

func (h AvailabilityHandler) OccupiedDates(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cabin name required"})
		return
	}
	query := availabilityapp.OccupiedDatesQuery{CabinName: name}
	result, err := queries.Ask[availabilityapp.OccupiedDatesQuery, dto.OccupiedDates](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, h.Logger, "availability.occupied_dates", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

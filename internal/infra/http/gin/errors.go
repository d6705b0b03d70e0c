package ginserver

import (
	"errors"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	bookingapp "pinelodge/internal/app/handlers/booking"
	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
	domainchange "pinelodge/internal/domain/changerequest"
	domainpricing "pinelodge/internal/domain/pricing"
	"pinelodge/internal/domain/shared/staydates"
	domainvisitors "pinelodge/internal/domain/visitors"
	"pinelodge/internal/infra/obs"
)

var validationErrors = []error{
	staydates.ErrInvalidRange,
	staydates.ErrBadDate,
	domainbooking.ErrEmptyReference,
	domainbooking.ErrEmptyMessage,
	domainbooking.ErrInvalidGuests,
	domainbooking.ErrGuestRequired,
	domainbooking.ErrCheckInInPast,
	domainbooking.ErrStayTooShort,
	domainbooking.ErrStayTooLong,
	domainbooking.ErrTooManyGuests,
	domaincabins.ErrInvalidCabin,
	domaincabins.ErrInvalidSettings,
	domainchange.ErrInvalidRequest,
	domainpricing.ErrInvalidNights,
	domainpricing.ErrNegativeComponent,
	domainvisitors.ErrInvalidIP,
	bookingapp.ErrPromoRejected,
	bookingapp.ErrEmailRequired,
}

// respondError maps domain errors onto the transport taxonomy: validation
// 400, missing targets 404, admission conflicts 409, everything else a
// logged 500.
func respondError(c *gin.Context, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, domainbooking.ErrNotFound),
		errors.Is(err, domaincabins.ErrCabinNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainbooking.ErrDatesConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if logger != nil {
			logger.Error("operation failed", "op", op, "error", err, "request_id", obs.RequestIDFromContext(c.Request.Context()))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

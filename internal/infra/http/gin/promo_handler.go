package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/app/dto"
	promoapp "pinelodge/internal/app/handlers/promo"
	"pinelodge/internal/app/queries"
)

type PromoHandler struct {
	Queries queries.Bus
	Logger  *slog.Logger
}

// Validate previews a promo code. A business-invalid code is still a 200
// with valid=false and a reason; only a missing code parameter is a 400.
func (h PromoHandler) Validate(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "promo code required"})
		return
	}
	query := promoapp.ValidatePromoQuery{Code: code}
	result, err := queries.Ask[promoapp.ValidatePromoQuery, dto.PromoValidation](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, h.Logger, "promo.validate", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

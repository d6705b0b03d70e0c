package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/app/commands"
	"pinelodge/internal/app/dto"
	changerequestapp "pinelodge/internal/app/handlers/changerequest"
	"pinelodge/internal/app/queries"
	"pinelodge/internal/domain/shared/staydates"
)

type ChangeRequestHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
	Logger   *slog.Logger
}

type submitChangeRequest struct {
	RequestedCheckIn  string `json:"requestedCheckIn"`
	RequestedCheckOut string `json:"requestedCheckOut"`
	Message           string `json:"message"`
}

func (h ChangeRequestHandler) Submit(c *gin.Context) {
	ref := c.Param("reference")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking reference required"})
		return
	}
	var req submitChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checkIn, err := staydates.ParseDay(req.RequestedCheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requestedCheckIn must be formatted YYYY-MM-DD"})
		return
	}
	checkOut, err := staydates.ParseDay(req.RequestedCheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requestedCheckOut must be formatted YYYY-MM-DD"})
		return
	}
	cmd := changerequestapp.SubmitChangeRequestCommand{
		Reference:         ref,
		RequestedCheckIn:  checkIn,
		RequestedCheckOut: checkOut,
		Message:           req.Message,
	}
	result, err := commands.Dispatch[changerequestapp.SubmitChangeRequestCommand, dto.ChangeRequestDetail](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, h.Logger, "changerequest.submit", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "request": result})
}

// List is the admin review surface for filed proposals.
func (h ChangeRequestHandler) List(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	ref := c.Param("reference")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking reference required"})
		return
	}
	q := changerequestapp.ListChangeRequestsQuery{Reference: ref}
	result, err := queries.Ask[changerequestapp.ListChangeRequestsQuery, dto.ChangeRequestCollection](c.Request.Context(), h.Queries, q)
	if err != nil {
		respondError(c, h.Logger, "changerequest.list", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

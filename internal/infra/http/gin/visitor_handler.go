package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/app/commands"
	visitorsapp "pinelodge/internal/app/handlers/visitors"
)

type VisitorHandler struct {
	Commands commands.Bus
	Logger   *slog.Logger
}

type recordVisitRequest struct {
	PageURL  string `json:"pageUrl"`
	Referrer string `json:"referrer"`
}

// Record is best-effort tracking: a storage failure is logged and
// swallowed, never surfaced to the visitor.
func (h VisitorHandler) Record(c *gin.Context) {
	var req recordVisitRequest
	_ = c.ShouldBindJSON(&req)
	cmd := visitorsapp.RecordVisitCommand{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  req.Referrer,
		PageURL:   req.PageURL,
	}
	if _, err := commands.Dispatch[visitorsapp.RecordVisitCommand, visitorsapp.RecordVisitResult](c.Request.Context(), h.Commands, cmd); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("visit tracking failed", "error", err, "ip", cmd.IP)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

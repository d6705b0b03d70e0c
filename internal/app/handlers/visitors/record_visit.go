package visitors

import (
	"context"
	"time"

	"pinelodge/internal/app/commands"
	domainvisitors "pinelodge/internal/domain/visitors"
)

const recordVisitKey = "visitors.record"

type RecordVisitCommand struct {
	IP        string
	UserAgent string
	Referrer  string
	PageURL   string
}

func (c RecordVisitCommand) Key() string { return recordVisitKey }

type RecordVisitResult struct{}

type RecordVisitHandler struct {
	Visitors domainvisitors.Repository
	Now      func() time.Time
}

// Handle upserts the per-IP counter. The increment itself is atomic in
// the repository; this handler never reads before writing.
func (h *RecordVisitHandler) Handle(ctx context.Context, cmd RecordVisitCommand) (RecordVisitResult, error) {
	if cmd.IP == "" {
		return RecordVisitResult{}, domainvisitors.ErrInvalidIP
	}
	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now().UTC()
	}
	err := h.Visitors.RecordVisit(ctx, domainvisitors.Visit{
		IP:        cmd.IP,
		UserAgent: cmd.UserAgent,
		Referrer:  cmd.Referrer,
		PageURL:   cmd.PageURL,
		At:        now,
	})
	return RecordVisitResult{}, err
}

var _ commands.Handler[RecordVisitCommand, RecordVisitResult] = (*RecordVisitHandler)(nil)

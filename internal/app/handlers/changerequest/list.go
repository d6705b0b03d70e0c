package changerequest

import (
	"context"

	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/queries"
	domainbooking "pinelodge/internal/domain/booking"
	domainchange "pinelodge/internal/domain/changerequest"
)

const listChangeRequestsKey = "changerequest.list"

type ListChangeRequestsQuery struct {
	Reference string
}

func (q ListChangeRequestsQuery) Key() string { return listChangeRequestsKey }

type ListChangeRequestsHandler struct {
	Bookings domainbooking.Repository
	Requests domainchange.Repository
}

// Handle returns the proposals filed against one booking, oldest first.
// The booking itself must exist; an empty history is a valid answer.
func (h *ListChangeRequestsHandler) Handle(ctx context.Context, q ListChangeRequestsQuery) (dto.ChangeRequestCollection, error) {
	ref := domainbooking.CanonicalReference(q.Reference)
	if ref == "" {
		return dto.ChangeRequestCollection{}, domainbooking.ErrEmptyReference
	}
	if _, err := h.Bookings.ByReference(ctx, ref); err != nil {
		return dto.ChangeRequestCollection{}, err
	}
	requests, err := h.Requests.ListByReference(ctx, ref)
	if err != nil {
		return dto.ChangeRequestCollection{}, err
	}
	return dto.MapChangeRequestCollection(requests), nil
}

var _ queries.Handler[ListChangeRequestsQuery, dto.ChangeRequestCollection] = (*ListChangeRequestsHandler)(nil)

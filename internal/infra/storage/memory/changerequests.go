package memory

import (
	"context"
	"sync"

	domainbooking "pinelodge/internal/domain/booking"
	domainchange "pinelodge/internal/domain/changerequest"
)

type ChangeRequestRepository struct {
	mu    sync.RWMutex
	items []domainchange.ChangeRequest
}

func NewChangeRequestRepository() *ChangeRequestRepository {
	return &ChangeRequestRepository{}
}

func (r *ChangeRequestRepository) Insert(ctx context.Context, request *domainchange.ChangeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *request)
	return nil
}

func (r *ChangeRequestRepository) ListByReference(ctx context.Context, ref domainbooking.Reference) ([]*domainchange.ChangeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domainchange.ChangeRequest
	for _, stored := range r.items {
		if stored.BookingReference == ref {
			cr := stored
			out = append(out, &cr)
		}
	}
	return out, nil
}

var _ domainchange.Repository = (*ChangeRequestRepository)(nil)

package memory

import (
	"context"
	"sync"

	domainvisitors "pinelodge/internal/domain/visitors"
)

// VisitorRepository holds one record per IP. The upsert-with-increment
// runs under the lock, never as read-then-write in caller code.
type VisitorRepository struct {
	mu    sync.Mutex
	items map[string]domainvisitors.Record
}

func NewVisitorRepository() *VisitorRepository {
	return &VisitorRepository{items: make(map[string]domainvisitors.Record)}
}

func (r *VisitorRepository) RecordVisit(ctx context.Context, visit domainvisitors.Visit) error {
	if visit.IP == "" {
		return domainvisitors.ErrInvalidIP
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[visit.IP]
	if !ok {
		rec = domainvisitors.Record{IP: visit.IP, FirstVisit: visit.At}
	}
	rec.VisitCount++
	rec.LastVisit = visit.At
	rec.UserAgent = visit.UserAgent
	rec.Referrer = visit.Referrer
	rec.PageURL = visit.PageURL
	r.items[visit.IP] = rec
	return nil
}

func (r *VisitorRepository) ByIP(ctx context.Context, ip string) (*domainvisitors.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[ip]
	if !ok {
		return nil, domainvisitors.ErrNotFound
	}
	out := rec
	return &out, nil
}

var _ domainvisitors.Repository = (*VisitorRepository)(nil)

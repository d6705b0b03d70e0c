package memory

import (
	"context"
	"sync"

	domainpromo "pinelodge/internal/domain/promo"
)

// PromoRepository keeps promo codes in memory. Redeem performs the
// compare-and-increment under the repository lock so concurrent
// redemptions can never overshoot MaxUses.
type PromoRepository struct {
	mu    sync.RWMutex
	items map[string]domainpromo.PromoCode
}

func NewPromoRepository() *PromoRepository {
	return &PromoRepository{items: make(map[string]domainpromo.PromoCode)}
}

func (r *PromoRepository) ByCode(ctx context.Context, code string) (*domainpromo.PromoCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.items[domainpromo.Canonical(code)]
	if !ok {
		return nil, domainpromo.ErrNotFound
	}
	p := stored
	return &p, nil
}

func (r *PromoRepository) Redeem(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := domainpromo.Canonical(code)
	stored, ok := r.items[key]
	if !ok {
		return domainpromo.ErrNotFound
	}
	if stored.MaxUses != nil && stored.CurrentUses >= *stored.MaxUses {
		return domainpromo.ErrUsageExhausted
	}
	stored.CurrentUses++
	r.items[key] = stored
	return nil
}

func (r *PromoRepository) Save(ctx context.Context, p *domainpromo.PromoCode) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *p
	stored.Code = domainpromo.Canonical(p.Code)
	r.items[stored.Code] = stored
	return nil
}

var _ domainpromo.Repository = (*PromoRepository)(nil)

package memory

import (
	"context"
	"sync"

	domainavailability "pinelodge/internal/domain/availability"
	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
)

// BookingRepository is the in-memory implementation backing tests and the
// memory storage mode. All admission coordination happens under one lock,
// so the check-and-insert is atomic.
type BookingRepository struct {
	mu    sync.RWMutex
	items map[domainbooking.Reference]domainbooking.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{items: make(map[domainbooking.Reference]domainbooking.Booking)}
}

func (r *BookingRepository) ByReference(ctx context.Context, ref domainbooking.Reference) (*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.items[ref]
	if !ok {
		return nil, domainbooking.ErrNotFound
	}
	b := stored
	return &b, nil
}

// Admit inserts the booking unless an existing blocking booking on the
// same cabin overlaps its inclusive day-set.
func (r *BookingRepository) Admit(ctx context.Context, b *domainbooking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[b.Reference]; exists {
		return domainbooking.ErrDatesConflict
	}
	existing := r.cabinBookingsLocked(b.CabinID)
	if !domainavailability.IsAvailable(existing, b.Stay) {
		return domainbooking.ErrDatesConflict
	}
	r.items[b.Reference] = *b
	return nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[b.Reference]; !ok {
		return domainbooking.ErrNotFound
	}
	r.items[b.Reference] = *b
	return nil
}

func (r *BookingRepository) ListByGuestEmail(ctx context.Context, email string) ([]*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domainbooking.Booking
	for _, stored := range r.items {
		if stored.Guest.Email == email {
			b := stored
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r *BookingRepository) ListByCabin(ctx context.Context, cabinID domaincabins.CabinID) ([]*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cabinBookingsLocked(cabinID), nil
}

func (r *BookingRepository) cabinBookingsLocked(cabinID domaincabins.CabinID) []*domainbooking.Booking {
	var out []*domainbooking.Booking
	for _, stored := range r.items {
		if stored.CabinID == cabinID {
			b := stored
			out = append(out, &b)
		}
	}
	return out
}

var _ domainbooking.Repository = (*BookingRepository)(nil)

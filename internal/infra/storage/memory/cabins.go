package memory

import (
	"context"
	"sort"
	"sync"

	domaincabins "pinelodge/internal/domain/cabins"
)

type CabinRepository struct {
	mu    sync.RWMutex
	items map[string]domaincabins.Cabin
}

func NewCabinRepository() *CabinRepository {
	return &CabinRepository{items: make(map[string]domaincabins.Cabin)}
}

func (r *CabinRepository) ByName(ctx context.Context, name string) (*domaincabins.Cabin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.items[domaincabins.CanonicalName(name)]
	if !ok {
		return nil, domaincabins.ErrCabinNotFound
	}
	c := stored
	return &c, nil
}

func (r *CabinRepository) List(ctx context.Context) ([]*domaincabins.Cabin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domaincabins.Cabin, 0, len(r.items))
	for _, stored := range r.items {
		c := stored
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CabinRepository) Save(ctx context.Context, cabin *domaincabins.Cabin) error {
	if err := cabin.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[domaincabins.CanonicalName(cabin.Name)] = *cabin
	return nil
}

var _ domaincabins.Repository = (*CabinRepository)(nil)

// SettingsStore keeps the single site-settings document.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domaincabins.Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: domaincabins.DefaultSettings()}
}

func (s *SettingsStore) Get(ctx context.Context) (domaincabins.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *SettingsStore) Save(ctx context.Context, settings domaincabins.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

var _ domaincabins.SettingsRepository = (*SettingsStore)(nil)

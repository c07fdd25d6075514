package patient

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no patient exists for an id. Callers
// treat a miss as a normal failure-shaped outcome, not a fault.
var ErrNotFound = errors.New("patient not found")

// Repository defines patient storage.
type Repository interface {
	Upsert(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
}

// -- In-memory implementation --

// memoryRepo keys patients by id and tracks insertion order so List is
// deterministic. All registries live in process memory only; nothing
// survives a restart.
type memoryRepo struct {
	mu       sync.RWMutex
	patients map[string]*Patient
	order    []string
}

func NewMemoryRepo() Repository {
	return &memoryRepo{patients: make(map[string]*Patient)}
}

func (r *memoryRepo) Upsert(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.patients[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	stored := *p
	r.patients[p.ID] = &stored
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *memoryRepo) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Patient, 0, len(r.patients))
	for _, id := range r.order {
		p, ok := r.patients[id]
		if !ok {
			continue
		}
		copy := *p
		result = append(result, &copy)
	}
	return result, nil
}

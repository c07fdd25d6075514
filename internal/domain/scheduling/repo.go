package scheduling

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]*Appointment, error)
}

// -- In-memory implementation --

type memoryRepo struct {
	mu           sync.RWMutex
	appointments map[string]*Appointment
	order        []string
}

func NewMemoryRepo() Repository {
	return &memoryRepo{appointments: make(map[string]*Appointment)}
}

func (r *memoryRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[a.ID]; !exists {
		r.order = append(r.order, a.ID)
	}
	stored := *a
	r.appointments[a.ID] = &stored
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *a
	return &copy, nil
}

func (r *memoryRepo) Update(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[a.ID]; !ok {
		return ErrNotFound
	}
	stored := *a
	r.appointments[a.ID] = &stored
	return nil
}

func (r *memoryRepo) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Appointment, 0, len(r.appointments))
	for _, id := range r.order {
		a, ok := r.appointments[id]
		if !ok {
			continue
		}
		copy := *a
		result = append(result, &copy)
	}
	return result, nil
}

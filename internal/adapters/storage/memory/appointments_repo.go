package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"dentist-backend/internal/domain/booking"
)

type appointmentsRepo struct {
	mu   sync.RWMutex
	byID map[string]booking.Appointment
}

func NewAppointmentsRepo() booking.Repository {
	return &appointmentsRepo{
		byID: make(map[string]booking.Appointment),
	}
}

func (r *appointmentsRepo) Create(ctx context.Context, a booking.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}

	// emula el índice único parcial (date, time) WHERE status <> 'cancelled'
	for _, other := range r.byID {
		if other.Status == booking.StatusCancelled {
			continue
		}
		if other.Date == a.Date && other.Time == a.Time {
			return booking.ErrSlotConflict
		}
	}

	r.byID[a.ID] = a
	return nil
}

func (r *appointmentsRepo) ListActiveBySlot(ctx context.Context, date, timeOfDay string) ([]booking.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]booking.Appointment, 0)
	for _, a := range r.byID {
		if a.Status == booking.StatusCancelled {
			continue
		}
		if a.Date == date && a.Time == timeOfDay {
			out = append(out, a)
		}
	}

	// orden estable solo para consistencia en dev
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Cancel marca una cita como cancelled. No está expuesto por HTTP: existe
// para simular en dev/tests la acción administrativa que libera el slot.
func (r *appointmentsRepo) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return false
	}
	a.Status = booking.StatusCancelled
	r.byID[id] = a
	return true
}

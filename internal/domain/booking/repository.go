package booking

import (
	"context"
	"errors"
)

var (
	// ErrSlotConflict lo devuelve Create cuando el constraint del store
	// (índice único parcial sobre fecha+hora sin canceladas) atrapa una
	// carrera que el pre-check no vio.
	ErrSlotConflict = errors.New("slot already booked")

	// ErrNotPersisted: el store no confirmó la fila insertada.
	ErrNotPersisted = errors.New("store did not confirm the insert")
)

type Repository interface {
	Create(ctx context.Context, a Appointment) error

	// ListActiveBySlot devuelve las citas con ese (date, time) exacto
	// cuyo status no es cancelled.
	ListActiveBySlot(ctx context.Context, date, timeOfDay string) ([]Appointment, error)
}

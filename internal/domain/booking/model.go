package booking

import "time"

// Status de una cita.
// @Enum pending, confirmed, cancelled
type Status string

const (
	// StatusPending: la cita quedó en el store pero el evento de calendario
	// no se pudo crear (o el calendario no está configurado).
	StatusPending Status = "pending"

	// StatusConfirmed: cita persistida con evento de calendario creado.
	StatusConfirmed Status = "confirmed"

	// StatusCancelled lo setea un proceso administrativo fuera de esta API;
	// acá solo importa para excluir la cita del chequeo de conflicto.
	StatusCancelled Status = "cancelled"
)

// Appointment es una cita de la clínica.
// Date y Time se guardan como strings ("YYYY-MM-DD", "HH:MM"): el conflicto
// de slot es por igualdad exacta del par, no por rangos.
type Appointment struct {
	ID          string
	FullName    string
	PhoneNumber string
	Email       string

	Date    string // YYYY-MM-DD
	Time    string // HH:MM, reloj de 24h
	Service string // texto libre

	// GoogleEventID queda vacío si la creación del evento falló o se salteó.
	GoogleEventID string
	Status        Status

	CreatedAt time.Time
}

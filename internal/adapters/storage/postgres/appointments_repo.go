package postgres

import (
	"context"
	"database/sql"

	"dentist-backend/internal/domain/booking"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a booking.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, full_name, phone_number, email,
			appointment_date, appointment_time, service,
			google_event_id, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.FullName,
		a.PhoneNumber,
		a.Email,
		a.Date,
		a.Time,
		a.Service,
		toNullString(a.GoogleEventID),
		string(a.Status),
		a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// índice único parcial (date, time) WHERE status <> 'cancelled':
			// dos reservas concurrentes pasaron el pre-check, esta perdió
			return booking.ErrSlotConflict
		}
		return err
	}
	return nil
}

func (r *AppointmentsRepo) ListActiveBySlot(ctx context.Context, date, timeOfDay string) ([]booking.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, full_name, phone_number, email,
		       appointment_date, appointment_time, service,
		       google_event_id, status, created_at
		FROM appointments
		WHERE appointment_date = $1
		  AND appointment_time = $2
		  AND status <> 'cancelled'
	`, date, timeOfDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]booking.Appointment, 0)
	for rows.Next() {
		var a booking.Appointment
		var eventID sql.NullString
		var status string
		if err := rows.Scan(
			&a.ID,
			&a.FullName,
			&a.PhoneNumber,
			&a.Email,
			&a.Date,
			&a.Time,
			&a.Service,
			&eventID,
			&status,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.GoogleEventID = eventID.String
		a.Status = booking.Status(status)
		out = append(out, a)
	}
	return out, rows.Err()
}

// google_event_id es nullable: vacío => NULL, igual que el store original
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

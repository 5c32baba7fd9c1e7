package supabase

import (
	"context"
	"errors"
	"time"

	"dentist-backend/internal/domain/booking"
)

const appointmentsTable = "appointments"

type AppointmentsRepo struct {
	client *Client
}

func NewAppointmentsRepo(client *Client) *AppointmentsRepo {
	return &AppointmentsRepo{client: client}
}

type appointmentRow struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	PhoneNumber     string    `json:"phone_number"`
	Email           string    `json:"email"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Service         string    `json:"service"`
	GoogleEventID   *string   `json:"google_event_id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *AppointmentsRepo) Create(ctx context.Context, a booking.Appointment) error {
	row := appointmentRow{
		ID:              a.ID,
		FullName:        a.FullName,
		PhoneNumber:     a.PhoneNumber,
		Email:           a.Email,
		AppointmentDate: a.Date,
		AppointmentTime: a.Time,
		Service:         a.Service,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
	// google_event_id va como null si el evento no se creó
	if a.GoogleEventID != "" {
		id := a.GoogleEventID
		row.GoogleEventID = &id
	}

	var inserted []appointmentRow
	if err := r.client.Insert(ctx, appointmentsTable, row, &inserted); err != nil {
		if errors.Is(err, ErrConflict) {
			return booking.ErrSlotConflict
		}
		return err
	}
	if len(inserted) == 0 {
		return booking.ErrNotPersisted
	}
	return nil
}

func (r *AppointmentsRepo) ListActiveBySlot(ctx context.Context, date, timeOfDay string) ([]booking.Appointment, error) {
	var rows []appointmentRow
	if err := r.client.Find(ctx, appointmentsTable, map[string]string{
		"appointment_date": "eq." + date,
		"appointment_time": "eq." + timeOfDay,
		"status":           "neq." + string(booking.StatusCancelled),
	}, &rows); err != nil {
		return nil, err
	}

	out := make([]booking.Appointment, 0, len(rows))
	for _, row := range rows {
		a := booking.Appointment{
			ID:          row.ID,
			FullName:    row.FullName,
			PhoneNumber: row.PhoneNumber,
			Email:       row.Email,
			Date:        row.AppointmentDate,
			Time:        row.AppointmentTime,
			Service:     row.Service,
			Status:      booking.Status(row.Status),
			CreatedAt:   row.CreatedAt,
		}
		if row.GoogleEventID != nil {
			a.GoogleEventID = *row.GoogleEventID
		}
		out = append(out, a)
	}
	return out, nil
}

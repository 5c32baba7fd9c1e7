package booking

import (
	"context"
	"errors"
	"time"
)

// ErrCalendarUnavailable normaliza cualquier falla del servicio de calendario
// externo (auth, red, upstream). Es el ÚNICO error que Book absorbe: todo lo
// demás que salga del client se propaga.
var ErrCalendarUnavailable = errors.New("calendar unavailable")

// Event es el evento a crear en el calendario externo.
// Start/End llevan el offset fijo +05:30, así el formato RFC3339 ya carga
// la zona y el servicio receptor no necesita un campo timezone aparte.
type Event struct {
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
}

type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// CalendarClient crea eventos best-effort. Un client nil significa
// "calendario no configurado" y la reserva sigue sin evento.
type CalendarClient interface {
	CreateEvent(ctx context.Context, ev Event) (CreatedEvent, error)
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dentist-backend/internal/platform/logger"
)

// IST: la clínica agenda todo en hora de India (UTC+05:30), sin DST.
var IST = time.FixedZone("IST", 5*60*60+30*60)

const (
	slotDuration           = time.Hour
	defaultCalendarTimeout = 10 * time.Second

	clinicLocation = "T Nagar Dental Clinic"
)

var (
	ErrInvalidDateTime = errors.New("invalid date or time format")
	ErrMissingFields   = errors.New("all fields are required")
)

// SlotTakenError: el slot pedido ya tiene una cita activa. Sugiere siempre
// el slot de una hora después (grilla fija, no busca el próximo libre).
type SlotTakenError struct {
	Requested string // HH:MM pedido
	NextSlot  string // HH:MM sugerido
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("Time slot %s is already booked. Please try %s or another time.", e.Requested, e.NextSlot)
}

type Service struct {
	repo       Repository
	cal        CalendarClient // nil => siempre se saltea el evento
	log        logger.Logger
	calTimeout time.Duration
	now        func() time.Time
}

func NewService(repo Repository, cal CalendarClient, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:       repo,
		cal:        cal,
		log:        log,
		calTimeout: defaultCalendarTimeout,
		now:        time.Now,
	}
}

// CalendarTimeout ajusta el tope de espera de la llamada al calendario.
// Vencido el timeout, cuenta como falla de creación de evento (best-effort).
func (s *Service) CalendarTimeout(d time.Duration) {
	if d > 0 {
		s.calTimeout = d
	}
}

type BookInput struct {
	FullName    string
	PhoneNumber string
	Email       string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Service     string
}

type Result struct {
	Appointment Appointment

	// EventLink queda vacío si no hay evento de calendario.
	EventLink string
}

// Book ejecuta el flujo completo, cada paso es una salida posible:
// parsear/localizar, chequear conflicto contra el store, crear evento
// best-effort, persistir, responder.
//
// El orden importa: el conflicto se decide contra el store durable ANTES
// de tocar el calendario. Una falla del calendario degrada el status a
// pending pero nunca voltea la reserva.
func (s *Service) Book(ctx context.Context, in BookInput) (Result, error) {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Service) == "" {
		return Result{}, ErrMissingFields
	}

	// 1. Parse + localizar en IST
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, IST)
	if err != nil {
		return Result{}, ErrInvalidDateTime
	}
	end := start.Add(slotDuration)

	// 2. Conflicto: par (date, time) exacto, ignorando canceladas.
	// Este pre-check puede perder una carrera; Create devuelve ErrSlotConflict
	// si el constraint del store la atrapa.
	existing, err := s.repo.ListActiveBySlot(ctx, in.Date, in.Time)
	if err != nil {
		return Result{}, err
	}
	if len(existing) > 0 {
		return Result{}, &SlotTakenError{
			Requested: in.Time,
			NextSlot:  start.Add(slotDuration).Format("15:04"),
		}
	}

	// 3. Evento de calendario, best-effort
	eventID, err := s.createEvent(ctx, in, start, end)
	if err != nil {
		return Result{}, err
	}

	status := StatusPending
	if eventID != "" {
		status = StatusConfirmed
	}

	// 4. Persistir
	a := Appointment{
		ID:            uuid.NewString(),
		FullName:      strings.TrimSpace(in.FullName),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		Email:         strings.TrimSpace(in.Email),
		Date:          in.Date,
		Time:          in.Time,
		Service:       strings.TrimSpace(in.Service),
		GoogleEventID: eventID,
		Status:        status,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			return Result{}, &SlotTakenError{
				Requested: in.Time,
				NextSlot:  start.Add(slotDuration).Format("15:04"),
			}
		}
		return Result{}, err
	}

	// 5. Respuesta
	res := Result{Appointment: a}
	if eventID != "" {
		res.EventLink = "https://www.google.com/calendar/event?eid=" + eventID
	}
	return res, nil
}

// createEvent intenta crear el evento externo bajo timeout explícito.
// Devuelve ID vacío cuando el evento no se creó. Solo se absorben
// ErrCalendarUnavailable y el vencimiento del timeout: cualquier otro error
// del client es un bug y se propaga tal cual.
func (s *Service) createEvent(ctx context.Context, in BookInput, start, end time.Time) (string, error) {
	if s.cal == nil {
		s.log.Warn("calendar not configured, booking without event", map[string]any{
			"date": in.Date,
			"time": in.Time,
		})
		return "", nil
	}

	ev := Event{
		Summary:  fmt.Sprintf("Dentist Appt: %s - %s", in.Service, in.FullName),
		Location: clinicLocation,
		Description: fmt.Sprintf("Appointment for %s.\nPatient: %s\nPhone: %s",
			in.Service, in.FullName, in.PhoneNumber),
		Start: start,
		End:   end,
	}

	cctx, cancel := context.WithTimeout(ctx, s.calTimeout)
	defer cancel()

	created, err := s.cal.CreateEvent(cctx, ev)
	switch {
	case err == nil:
		return created.ID, nil
	case errors.Is(err, ErrCalendarUnavailable), errors.Is(err, context.DeadlineExceeded):
		s.log.Warn("calendar event creation failed", map[string]any{
			"date": in.Date,
			"time": in.Time,
			"err":  err.Error(),
		})
		return "", nil
	default:
		return "", err
	}
}

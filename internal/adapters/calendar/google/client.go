// Package google implementa el client de calendario best-effort sobre la
// API de Google Calendar, autenticado con una service account.
package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"dentist-backend/internal/domain/booking"
)

type Config struct {
	// CredentialsFile: path al JSON de la service account.
	CredentialsFile string
	// CalendarID del calendario destino (compartido con la service account).
	CalendarID string
}

func (c Config) IsConfigured() bool {
	return strings.TrimSpace(c.CredentialsFile) != "" && strings.TrimSpace(c.CalendarID) != ""
}

// Client implementa booking.CalendarClient.
type Client struct {
	events     eventsInserter
	calendarID string
}

// eventsInserter desacopla el servicio real para poder testear CreateEvent.
type eventsInserter interface {
	Insert(ctx context.Context, calendarID string, ev *gcal.Event) (*gcal.Event, error)
}

type calendarEvents struct {
	svc *gcal.Service
}

func (c calendarEvents) Insert(ctx context.Context, calendarID string, ev *gcal.Event) (*gcal.Event, error) {
	return c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
}

// NewClient arma el servicio calendar/v3 desde el JSON de la service account.
// Errores acá son de configuración y se devuelven tal cual: la política
// best-effort aplica a las llamadas, no al arranque.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, errors.New("google calendar: missing credentials or calendar id")
	}

	b, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("google calendar: read credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(b, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("google calendar: parse credentials: %w", err)
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("google calendar: new service: %w", err)
	}

	return &Client{
		events:     calendarEvents{svc: svc},
		calendarID: strings.TrimSpace(cfg.CalendarID),
	}, nil
}

// CreateEvent inserta el evento y devuelve su ID y link.
// Toda falla upstream (auth, red, cuota, timeout) se normaliza en
// booking.ErrCalendarUnavailable, que es lo único que el orquestador absorbe.
func (c *Client) CreateEvent(ctx context.Context, ev booking.Event) (booking.CreatedEvent, error) {
	created, err := c.events.Insert(ctx, c.calendarID, toGoogleEvent(ev))
	if err != nil {
		return booking.CreatedEvent{}, wrapUpstream(err)
	}
	return booking.CreatedEvent{
		ID:       created.Id,
		HTMLLink: created.HtmlLink,
	}, nil
}

func wrapUpstream(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: auth failed (status=%d)", booking.ErrCalendarUnavailable, gerr.Code)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: rate limited", booking.ErrCalendarUnavailable)
		default:
			return fmt.Errorf("%w: status=%d", booking.ErrCalendarUnavailable, gerr.Code)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", booking.ErrCalendarUnavailable, err)
	}
	// errores de transporte (DNS, conexión, TLS) también son "upstream caído"
	return fmt.Errorf("%w: %v", booking.ErrCalendarUnavailable, err)
}

var _ booking.CalendarClient = (*Client)(nil)

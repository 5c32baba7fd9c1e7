package google

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"dentist-backend/internal/domain/booking"
)

// toGoogleEvent traduce el evento del dominio al body de calendar/v3.
// Start/End van en RFC3339 con el offset que ya trae el time.Time (+05:30),
// así no hace falta mandar TimeZone aparte. Recordatorios fijos: email 24h
// antes y popup 30min antes.
func toGoogleEvent(ev booking.Event) *gcal.Event {
	return &gcal.Event{
		Summary:     ev.Summary,
		Location:    ev.Location,
		Description: ev.Description,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

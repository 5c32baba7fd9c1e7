package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dentist-backend/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/book-appointment", bookHandler(svc, log))
}

type bookRequest struct {
	FullName        string `json:"full_name"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	AppointmentDate string `json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string `json:"appointment_time"` // HH:MM
	Service         string `json:"service"`
}

type bookResponse struct {
	Message string `json:"message"`

	// null cuando el evento de calendario no se creó, igual que el campo
	// que siempre devolvió esta API.
	GoogleEventLink *string `json:"google_event_link"`
}

// bookHandler godoc
// @Summary Reservar cita
// @Description Reserva un slot de una hora. El chequeo de conflicto va contra el store; el evento de Google Calendar es best-effort y su falla nunca voltea la reserva (la cita queda pending y sin link).
// @Tags booking
// @Accept json
// @Produce json
// @Param payload body bookRequest true "Datos de la cita; appointment_date YYYY-MM-DD, appointment_time HH:MM (24h, IST)"
// @Success 200 {object} bookResponse
// @Failure 400 {object} errorResponse "Invalid date or time format / Time slot ... is already booked"
// @Failure 500 {object} errorResponse
// @Router /book-appointment [post]
func bookHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.Book(r.Context(), BookInput{
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
			Date:        req.AppointmentDate,
			Time:        req.AppointmentTime,
			Service:     req.Service,
		})
		if err != nil {
			var st *SlotTakenError
			switch {
			case errors.Is(err, ErrInvalidDateTime):
				writeError(w, http.StatusBadRequest, "Invalid date or time format")
			case errors.Is(err, ErrMissingFields):
				writeError(w, http.StatusBadRequest, "all fields are required")
			case errors.As(err, &st):
				writeError(w, http.StatusBadRequest, st.Error())
			case errors.Is(err, ErrNotPersisted):
				writeError(w, http.StatusInternalServerError, "Failed to save appointment to database")
			default:
				log.Error("book appointment failed", map[string]any{"err": err.Error()})
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		out := bookResponse{Message: "Appointment booked successfully"}
		if res.EventLink != "" {
			link := res.EventLink
			out.GoogleEventLink = &link
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// duplicado a propósito (ver nota en accounts/handler.go)
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dentist-backend/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/register", registerHandler(svc, log))
	r.Post("/login", loginHandler(svc, log))
}

type registerRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Age         *int   `json:"age,omitempty"`
}

type registerResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea una cuenta de paciente. El email es único (case-insensitive). No emite sesión ni token.
// @Tags accounts
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro"
// @Success 201 {object} registerResponse
// @Failure 400 {object} errorResponse "input inválido / Email already registered"
// @Failure 500 {object} errorResponse
// @Router /register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Register(r.Context(), RegisterInput{
			FullName:    req.FullName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Password:    req.Password,
			Age:         req.Age,
		})
		if err != nil {
			var ve *ValidationError
			switch {
			case errors.As(err, &ve):
				writeError(w, http.StatusBadRequest, ve.Msg)
			case errors.Is(err, ErrEmailTaken):
				writeError(w, http.StatusBadRequest, "Email already registered")
			case errors.Is(err, ErrNotPersisted):
				writeError(w, http.StatusInternalServerError, "Failed to register user")
			default:
				// detalle solo al log; al cliente mensaje genérico
				log.Error("register failed", map[string]any{"err": err.Error()})
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, registerResponse{
			Message: "User registered successfully",
			Email:   a.Email,
		})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Verifica credenciales. Mismo mensaje para email desconocido y password incorrecto.
// @Tags accounts
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 401 {object} errorResponse "Invalid email or password"
// @Failure 500 {object} errorResponse
// @Router /login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			log.Error("login failed", map[string]any{"err": err.Error()})
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Message: "Login successful",
			UserID:  a.ID,
			Email:   a.Email,
		})
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON/writeError están duplicados a propósito en accounts y booking,
// igual que en otros módulos: todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

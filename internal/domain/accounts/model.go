package accounts

import "time"

// Account es el registro de un paciente del sitio.
// Email es la identidad única (case-insensitive, se guarda en minúsculas).
// No se actualiza ni se borra desde esta API.
type Account struct {
	ID           string
	FullName     string
	Email        string
	PhoneNumber  string // solo dígitos, largo >= 10
	Age          *int   // opcional
	PasswordHash string

	CreatedAt time.Time
}

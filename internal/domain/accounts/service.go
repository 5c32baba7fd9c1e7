package accounts

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"dentist-backend/internal/platform/password"
)

var (
	// ErrInvalidCredentials cubre email desconocido Y password incorrecto,
	// con el mismo mensaje para no filtrar qué parte falló.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError es un error de input con mensaje apto para el cliente.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Age         *int
}

// Register valida, chequea duplicado, hashea y persiste.
// El pre-check GetByEmail no es atómico contra registros concurrentes:
// el índice único del store es el backstop y Create devuelve ErrEmailTaken
// en ese caso.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, error) {
	fullName := strings.TrimSpace(in.FullName)
	if len(fullName) < 2 || len(fullName) > 100 {
		return Account{}, invalid("full_name must be between 2 and 100 characters")
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Account{}, invalid("invalid email address")
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	if len(phone) < 10 {
		return Account{}, invalid("phone_number must have at least 10 digits")
	}
	if !allDigits(phone) {
		return Account{}, invalid("Phone number must contain only digits")
	}

	if len(in.Password) < 6 || len(in.Password) > 72 {
		return Account{}, invalid("password must be between 6 and 72 characters")
	}

	if in.Age != nil && *in.Age < 0 {
		return Account{}, invalid("age must be greater than or equal to 0")
	}

	// Pre-check: solo para dar mejor mensaje; el índice único decide de verdad.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Account{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Account{}, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return Account{}, err
	}

	a := Account{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		Age:          in.Age,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Account{}, err
	}
	return a, nil
}

// Login es función pura del hash guardado y el password recibido.
// No emite sesión ni token; el resultado vale solo para este request.
func (s *Service) Login(ctx context.Context, email, pw string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pw == "" {
		return Account{}, ErrInvalidCredentials
	}

	a, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}

	if !password.Verify(a.PasswordHash, pw) {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func normalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", err
	}
	// mail.ParseAddress acepta "Nombre <a@b>"; acá solo queremos la dirección pelada
	if addr.Address != s {
		return "", errors.New("email must be a bare address")
	}
	return s, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

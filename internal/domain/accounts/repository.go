package accounts

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("account not found")

	// ErrEmailTaken lo devuelve Create cuando el store detecta email duplicado
	// (índice único); el service también lo usa en el pre-check.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotPersisted: el store no confirmó la fila insertada.
	ErrNotPersisted = errors.New("store did not confirm the insert")
)

type Repository interface {
	Create(ctx context.Context, a Account) error
	GetByEmail(ctx context.Context, email string) (Account, error)
}

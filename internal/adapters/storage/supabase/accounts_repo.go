package supabase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dentist-backend/internal/domain/accounts"
)

const accountsTable = "accounts"

type AccountsRepo struct {
	client *Client
}

func NewAccountsRepo(client *Client) *AccountsRepo {
	return &AccountsRepo{client: client}
}

type accountRow struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Age          *int      `json:"age"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *AccountsRepo) Create(ctx context.Context, a accounts.Account) error {
	var inserted []accountRow
	err := r.client.Insert(ctx, accountsTable, accountRow{
		ID:           a.ID,
		FullName:     a.FullName,
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		Age:          a.Age,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}, &inserted)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return accounts.ErrEmailTaken
		}
		return err
	}
	if len(inserted) == 0 {
		return accounts.ErrNotPersisted
	}
	return nil
}

func (r *AccountsRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return accounts.Account{}, accounts.ErrNotFound
	}

	var rows []accountRow
	if err := r.client.Find(ctx, accountsTable, map[string]string{
		"email": "eq." + email,
	}, &rows); err != nil {
		return accounts.Account{}, err
	}
	if len(rows) == 0 {
		return accounts.Account{}, accounts.ErrNotFound
	}

	row := rows[0]
	return accounts.Account{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		PhoneNumber:  row.PhoneNumber,
		Age:          row.Age,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}

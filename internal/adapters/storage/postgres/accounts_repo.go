package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"dentist-backend/internal/domain/accounts"
)

type AccountsRepo struct {
	db *sql.DB
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (r *AccountsRepo) Create(ctx context.Context, a accounts.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (
			id, full_name, email, phone_number, age, password_hash, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.FullName,
		a.Email,
		a.PhoneNumber,
		toNullInt(a.Age),
		a.PasswordHash,
		a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// el índice único sobre lower(email) atrapó un registro concurrente
			return accounts.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *AccountsRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return accounts.Account{}, accounts.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone_number, age, password_hash, created_at
		FROM accounts
		WHERE lower(email) = $1
	`, email)

	var a accounts.Account
	var age sql.NullInt64
	if err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.PhoneNumber,
		&age,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrNotFound
		}
		return accounts.Account{}, err
	}

	if age.Valid {
		v := int(age.Int64)
		a.Age = &v
	}
	return a, nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

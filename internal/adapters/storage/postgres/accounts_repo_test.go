package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentist-backend/internal/domain/accounts"
)

func newAccountsMock(t *testing.T) (*AccountsRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAccountsRepo(db), mock
}

func sampleAccount() accounts.Account {
	return accounts.Account{
		ID:           "11111111-1111-1111-1111-111111111111",
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		PhoneNumber:  "9876543210",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAccountsRepo_Create(t *testing.T) {
	repo, mock := newAccountsMock(t)
	a := sampleAccount()

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(a.ID, a.FullName, a.Email, a.PhoneNumber, sql.NullInt64{}, a.PasswordHash, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountsRepo_Create_UniqueViolation(t *testing.T) {
	repo, mock := newAccountsMock(t)

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_unique"})

	err := repo.Create(context.Background(), sampleAccount())
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountsRepo_Create_OtherErrorPassesThrough(t *testing.T) {
	repo, mock := newAccountsMock(t)

	boom := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO accounts").WillReturnError(boom)

	err := repo.Create(context.Background(), sampleAccount())
	assert.ErrorIs(t, err, boom)
}

func TestAccountsRepo_GetByEmail(t *testing.T) {
	repo, mock := newAccountsMock(t)
	a := sampleAccount()

	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "phone_number", "age", "password_hash", "created_at",
	}).AddRow(a.ID, a.FullName, a.Email, a.PhoneNumber, int64(34), a.PasswordHash, a.CreatedAt)

	mock.ExpectQuery("SELECT id, full_name, email").
		WithArgs("jane@x.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	require.NotNil(t, got.Age)
	assert.Equal(t, 34, *got.Age)
}

func TestAccountsRepo_GetByEmail_LowercasesBeforeQuerying(t *testing.T) {
	repo, mock := newAccountsMock(t)
	a := sampleAccount()

	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "phone_number", "age", "password_hash", "created_at",
	}).AddRow(a.ID, a.FullName, a.Email, a.PhoneNumber, nil, a.PasswordHash, a.CreatedAt)

	// el parámetro llega ya en minúsculas, el índice es sobre lower(email)
	mock.ExpectQuery("SELECT id, full_name, email").
		WithArgs("jane@x.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "  JANE@X.com ")
	require.NoError(t, err)
	assert.Nil(t, got.Age)
}

func TestAccountsRepo_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newAccountsMock(t)

	mock.ExpectQuery("SELECT id, full_name, email").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestAccountsRepo_GetByEmail_EmptyEmail(t *testing.T) {
	repo, _ := newAccountsMock(t)

	_, err := repo.GetByEmail(context.Background(), "   ")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

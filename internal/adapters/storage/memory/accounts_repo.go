package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dentist-backend/internal/domain/accounts"
)

type accountsRepo struct {
	mu      sync.RWMutex
	byEmail map[string]accounts.Account // key: email en minúsculas
}

func NewAccountsRepo() accounts.Repository {
	return &accountsRepo{
		byEmail: make(map[string]accounts.Account),
	}
}

func (r *accountsRepo) Create(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("account id required")
	}
	key := strings.ToLower(strings.TrimSpace(a.Email))
	if key == "" {
		return errors.New("account email required")
	}

	// emula el índice único sobre lower(email) del store real
	if _, exists := r.byEmail[key]; exists {
		return accounts.ErrEmailTaken
	}
	r.byEmail[key] = a
	return nil
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return a, nil
}

package repository

import (
	"context"
	"sync"

	"product-api/internal/model"
)

// UserRepository is the in-memory credential store. The check-then-insert in
// Create runs under a single lock so two concurrent registrations with the
// same email cannot both succeed. Emails are matched exactly as stored.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]model.User
	byID    map[string]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byEmail: map[string]model.User{},
		byID:    map[string]model.User{},
	}
}

func (r *UserRepository) Create(_ context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return model.ErrUserAlreadyExists
	}

	r.byEmail[user.Email] = user
	r.byID[user.ID] = user

	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byEmail[email]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}

	return user, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[id]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}

	return user, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"product-api/internal/model"
	"product-api/pkg/apierror"
)

// UserStore is the interface the auth flow needs from credential storage.
// Create must perform its duplicate-email check and the insert atomically.
type UserStore interface {
	Create(ctx context.Context, user model.User) error
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
}

type AuthService struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(users UserStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email string, password string, name string) (string, model.User, error) {
	if email == "" || password == "" || name == "" {
		return "", model.User{}, apierror.BadRequest("Email, password, and name are required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", model.User{}, apierror.Conflict("User already exists")
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return "", model.User{}, err
	}

	// Hash before touching the store lock; bcrypt is deliberately expensive
	// and must not serialize unrelated registrations.
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", model.User{}, err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	// The store re-checks under its own lock, so a concurrent registration
	// racing the FindByEmail above still loses cleanly.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUserAlreadyExists) {
			return "", model.User{}, apierror.Conflict("User already exists")
		}
		return "", model.User{}, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", model.User{}, err
	}

	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (string, model.User, error) {
	if email == "" || password == "" {
		return "", model.User{}, apierror.BadRequest("Email and password are required")
	}

	// Unknown email and wrong password produce the same response so the
	// endpoint cannot be used to enumerate accounts.
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", model.User{}, apierror.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return "", model.User{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", model.User{}, apierror.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", model.User{}, err
	}

	return token, user, nil
}
